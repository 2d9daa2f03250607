// Copyright (c) 2026 Wavecrate. All rights reserved.

// Package ctxkey defines the private key types used to store request-scoped
// values in [context.Context].
//
// Using an unexported key type prevents collisions with context values set
// by third-party packages.
package ctxkey

// Key is the dedicated type for all Wavecrate context keys.
type Key string

const (
	// KeyRequestID stores the correlation ID of the current request.
	KeyRequestID Key = "request_id"

	// KeyLogger stores the request-scoped *slog.Logger.
	KeyLogger Key = "logger"

	// KeyUser stores the authenticated DJ claims.
	KeyUser Key = "auth_user"
)
