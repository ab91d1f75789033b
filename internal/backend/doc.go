// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend is the HTTP client for the document answering service.
//
// The service exposes one operation, POST /api/ask with {"question"},
// answering either {"answer", "context"?} or {"error", "details"?}. The
// client maps those shapes to *Answer, *APIError, and ErrUnavailable and
// leaves all retry and lifecycle policy to the controller.
package backend
