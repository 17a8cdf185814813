package dto

import "time"

// RegisterRequest registration input. Role is optional: unauthenticated
// callers default to agent.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary public user projection (never includes the password hash).
type UserSummary struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  *bool     `json:"isActive,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// AuthResponse token plus public summary, returned by register and login.
type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// ForgotPasswordRequest input for the reset-link request.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest input for completing a password reset.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UserListResponse listing body for admins/agents endpoints.
type UserListResponse struct {
	Admins []UserSummary `json:"admins,omitempty"`
	Agents []UserSummary `json:"agents,omitempty"`
	Count  int           `json:"count"`
}

// AgentResponse single-agent body.
type AgentResponse struct {
	Agent UserSummary `json:"agent"`
}

// ToggleActiveResponse body for the activate/deactivate toggle.
type ToggleActiveResponse struct {
	Msg   string      `json:"msg"`
	Agent UserSummary `json:"agent"`
}

// BulkCreateRequest input for bulk user provisioning.
type BulkCreateRequest struct {
	Names []string `json:"names"`
	Role  string   `json:"role"`
}

// CredentialRow one row of the generated credential sheet. Password holds
// the generated plaintext for new accounts, "Already Exists" otherwise.
type CredentialRow struct {
	Name      string
	Email     string
	Role      string
	Password  string
	CreatedAt time.Time
}
