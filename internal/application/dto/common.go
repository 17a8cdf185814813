package dto

import (
	"fmt"
	"strings"
	"time"
)

// ErrorResponse uniform error body rendered by the HTTP boundary.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// MessageResponse generic success body.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Actor is the authenticated caller, extracted from the session token by
// the auth middleware and passed to use cases for ownership assignment and
// audit snapshots.
type Actor struct {
	ID       string
	Name     string
	Email    string
	Role     string
	IsActive bool
}

// Date accepts both "2006-01-02" and RFC 3339 timestamps in JSON payloads,
// since the frontend submits plain dates for dateOfSale.
type Date struct {
	time.Time
}

// UnmarshalJSON parses a JSON string as date or timestamp. null and ""
// leave the zero value.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// MarshalJSON renders RFC 3339, matching the store's timestamp output.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}
