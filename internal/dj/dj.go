/*
Package dj implements staff identity for the station.

A DJ is anyone with stacks access: they sign reviews and problem reports
in the catalog, host programs, and (when flagged admin) manage catalog
entries. Authentication is JWT access tokens plus rotated refresh tokens
held in Redis.
*/
package dj

import (
	"github.com/wavecrate/wavecrate/internal/platform/sec"
)

// DJ is a staff account. The ID is what review and problem rows reference
// in their dj_id column; nothing in the schema enforces that reference,
// so the album service checks it through [Directory].
type DJ struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	Role         sec.UserRole `json:"role"`
	PasswordHash string       `json:"-"`
}

// IsAdmin reports whether the DJ may modify catalog entries.
func (d DJ) IsAdmin() bool {
	return d.Role.AtLeast(sec.RoleAdmin)
}

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)
