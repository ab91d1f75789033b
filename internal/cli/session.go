// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Shared wiring for the plain surfaces.
//
// Every command builds the same stack the TUI uses: config, store,
// backend client, and the lifecycle controller. Keeping construction in
// one place means a flag like --url behaves identically everywhere.

package cli

import (
	"context"
	"fmt"

	"github.com/jeranaias/askdoc-tui/internal/backend"
	"github.com/jeranaias/askdoc-tui/internal/config"
	"github.com/jeranaias/askdoc-tui/internal/controller"
	"github.com/jeranaias/askdoc-tui/internal/model"
	"github.com/jeranaias/askdoc-tui/internal/storage"
)

// Session bundles the collaborators a plain-surface command needs.
type Session struct {
	Config config.Config
	Store  *storage.Store
	Client *backend.Client
	Ctrl   *controller.Controller
}

// NewSession loads configuration, opens the message store, and builds the
// backend client and controller. CLI flags override config values.
func NewSession(args Args) (*Session, error) {
	var cfg config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFrom(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if args.BackendURL != "" {
		cfg.Backend.URL = args.BackendURL
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--url: %w", err)
		}
	}

	dir, err := cfg.StateDir()
	if err != nil {
		return nil, fmt.Errorf("resolving state dir: %w", err)
	}
	store, err := storage.NewStoreWithDir(dir)
	if err != nil {
		return nil, fmt.Errorf("opening message store: %w", err)
	}
	store.MaxMessages = cfg.History.MaxMessages

	client := backend.NewClient(cfg.Backend.URL).WithTimeout(cfg.Timeout())

	return &Session{
		Config: cfg,
		Store:  store,
		Client: client,
		Ctrl:   controller.New(store),
	}, nil
}

// Ask runs one full question cycle through the controller and returns
// the reply message. Transport failures come back as an error reply, the
// same way the TUI shows them; only controller rejections (busy, blank)
// surface as errors.
func (s *Session) Ask(ctx context.Context, question string) (model.Message, error) {
	if _, err := s.Ctrl.Begin(question); err != nil {
		return model.Message{}, err
	}

	askCtx, cancel := context.WithTimeout(ctx, s.Config.Timeout())
	defer cancel()

	answer, err := s.Client.Ask(askCtx, question)
	if err != nil {
		ex, failErr := s.Ctrl.Fail(err)
		if failErr != nil {
			return model.Message{}, failErr
		}
		return ex.Reply, nil
	}

	ex, err := s.Ctrl.Resolve(answer)
	if err != nil {
		return model.Message{}, err
	}
	return ex.Reply, nil
}
