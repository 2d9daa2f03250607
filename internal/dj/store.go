package dj

import (
	"context"
	"time"
)

// Repository is the storage surface for DJ accounts.
type Repository interface {
	ListDJs(context context.Context) ([]*DJ, error)
	GetDJ(context context.Context, id string) (*DJ, error)
	FindByUsername(context context.Context, username string) (*DJ, error)
	FindByEmail(context context.Context, email string) (*DJ, error)
	CreateDJ(context context.Context, d *DJ) error
	UpdatePassword(context context.Context, id, passwordHash string) error
	DeleteDJ(context context.Context, id string) error
	DJExists(context context.Context, id string) (bool, error)
}

// SessionStore tracks refresh sessions. Keys are token hashes, values are
// DJ ids; expiry is delegated to the store's TTL.
type SessionStore interface {
	Set(context context.Context, tokenHash, djID string, ttl time.Duration) error
	Get(context context.Context, tokenHash string) (string, error)
	Delete(context context.Context, tokenHash string) error
}

// ResetTokenStore tracks short-lived credential-reset tokens.
type ResetTokenStore interface {
	Set(context context.Context, token, djID string, ttl time.Duration) error
	Get(context context.Context, token string) (string, error)
	Delete(context context.Context, token string) error
}
