package dj

import "time"

const (
	// AccessTokenTTL is the lifetime of a signed JWT access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the lifetime of a refresh session in Redis.
	RefreshTokenTTL = 7 * 24 * time.Hour

	// ResetTokenTTL is the lifetime of a credential-reset token.
	ResetTokenTTL = 30 * time.Minute

	// RefreshTokenLength and ResetTokenLength are random byte counts,
	// hex-encoded on the wire.
	RefreshTokenLength = 32
	ResetTokenLength   = 32
)
