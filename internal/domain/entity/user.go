package entity

import "time"

// Valid roles for User.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleAgent      = "agent"
	RoleQAAgent    = "qa-agent"
	// RoleQAManager is not a registrable role but is honored by the sale
	// listing policy for compatibility with the review frontend.
	RoleQAManager = "qa-manager"
)

// ValidRoles roles accepted at registration.
var ValidRoles = []string{RoleSuperadmin, RoleAdmin, RoleAgent, RoleQAAgent}

// IsValidRole reports whether role is a registrable role.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User identity record. CreatedBy references the creating user when the
// account was provisioned by an authenticated superadmin/admin.
type User struct {
	ID                   string
	Name                 string
	Email                string
	PasswordHash         string // bcrypt hash, never plaintext past the use case
	Role                 string
	IsActive             bool
	CreatedBy            string // empty for self-registered accounts
	PasswordResetToken   string
	PasswordResetExpires *time.Time
	CreatedAt            time.Time
}

// Snapshot returns the identity snapshot embedded in audit-trail entries.
// It is a copy taken at write time, not a live reference.
func (u *User) Snapshot() ActorSnapshot {
	return ActorSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
