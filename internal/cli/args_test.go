// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd != CmdTUI {
		t.Errorf("cmd = %v, want CmdTUI", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"chat"}, CmdChat},
		{[]string{"history"}, CmdHistory},
		{[]string{"export"}, CmdExport},
		{[]string{"clear"}, CmdClear},
		{[]string{"status"}, CmdStatus},
		{[]string{"version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"--plain"}, CmdChat},
	}

	for _, tt := range tests {
		cmd, _, err := Parse(tt.argv)
		if err != nil {
			t.Errorf("Parse(%v): %v", tt.argv, err)
			continue
		}
		if cmd != tt.want {
			t.Errorf("Parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
		}
	}
}

func TestParseAskJoinsQuestion(t *testing.T) {
	cmd, args, err := Parse([]string{"ask", "what", "is", "this"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Question != "what is this" {
		t.Errorf("Question = %q", args.Question)
	}
}

func TestParseBareWordsBecomeQuestion(t *testing.T) {
	cmd, args, err := Parse([]string{"what", "is", "chapter", "two"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Question != "what is chapter two" {
		t.Errorf("Question = %q", args.Question)
	}
}

func TestParseFlags(t *testing.T) {
	cmd, args, err := Parse([]string{"history", "--limit", "5", "--config=/tmp/a.toml", "--url", "http://localhost:9000", "-q"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd != CmdHistory {
		t.Fatalf("cmd = %v, want CmdHistory", cmd)
	}
	if args.Limit != 5 {
		t.Errorf("Limit = %d, want 5", args.Limit)
	}
	if args.ConfigPath != "/tmp/a.toml" {
		t.Errorf("ConfigPath = %q", args.ConfigPath)
	}
	if args.BackendURL != "http://localhost:9000" {
		t.Errorf("BackendURL = %q", args.BackendURL)
	}
	if !args.Quiet {
		t.Error("Quiet not set")
	}
}

func TestParseExportMarkdown(t *testing.T) {
	cmd, args, err := Parse([]string{"export", "--md"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd != CmdExport || !args.Markdown {
		t.Errorf("cmd = %v, Markdown = %v", cmd, args.Markdown)
	}
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	if _, _, err := Parse([]string{"--frobnicate"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseRejectsBadLimit(t *testing.T) {
	if _, _, err := Parse([]string{"history", "--limit", "many"}); err == nil {
		t.Error("expected error for non-numeric limit")
	}
	if _, _, err := Parse([]string{"history", "--limit"}); err == nil {
		t.Error("expected error for missing limit value")
	}
}
