package entity

import "regexp"

// Validation patterns shared by the record types.
var (
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,15}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidPhone reports whether s looks like a phone number (10-15 digits,
// spaces and dashes allowed, optional leading +).
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// UserRef is the projection of an agent attached to a record listing
// (populated from the users table, analogous to a Mongoose populate).
type UserRef struct {
	ID    string
	Name  string
	Email string
}
