// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend and storage status command.

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jeranaias/askdoc-tui/internal/history"
)

// Version information, synced from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// HandleVersion prints version information.
func HandleVersion(args Args) error {
	if args.Quiet {
		fmt.Println(Version)
		return nil
	}
	fmt.Printf("askdoc %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	return nil
}

// HandleStatus reports backend reachability and storage statistics.
func HandleStatus(args Args) error {
	session, err := NewSession(args)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("askdoc status"))
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if pingErr := session.Client.Ping(ctx); pingErr != nil {
		fmt.Printf("  %s %s\n",
			infoStyle.Render("Backend:"),
			errorStyle.Render(fmt.Sprintf("unreachable (%s)", session.Client.BaseURL())))
	} else {
		fmt.Printf("  %s %s\n",
			infoStyle.Render("Backend:"),
			commandStyle.Render(fmt.Sprintf("connected (%s)", session.Client.BaseURL())))
	}

	log := session.Store.Load()
	convs := history.Segment(log)
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Log:"),
		session.Store.LogPath())
	fmt.Printf("  %s %d messages in %d conversations (cap %d)\n",
		infoStyle.Render("Stored:"),
		len(log),
		len(convs),
		session.Store.MaxMessages)

	fmt.Println()
	return nil
}
