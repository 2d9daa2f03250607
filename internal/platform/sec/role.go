// Copyright (c) 2026 Wavecrate. All rights reserved.

package sec

// UserRole enumerates the station staff access levels.
type UserRole string

const (
	// RoleDJ is a regular staff member: can log shows, file reviews and
	// problem reports.
	RoleDJ UserRole = "dj"

	// RoleAdmin is the music director tier: full catalog write access.
	RoleAdmin UserRole = "admin"
)

// Valid reports whether the role is one of the known access levels.
func (r UserRole) Valid() bool {
	return r == RoleDJ || r == RoleAdmin
}

// rank maps each role to its privilege level for ordered comparison.
func (r UserRole) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleDJ:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the privileges of target.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.rank() >= target.rank()
}
