package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. Session tokens authenticate requests; reset tokens are
// single-use password-reset links and are rejected by the auth middleware.
const (
	PurposeSession       = "session"
	PurposePasswordReset = "password_reset"
)

// Claims includes the standard JWT claims plus the application's own fields.
// Role and IsActive travel in the token so the middleware can authorize
// without a DB round trip.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // superadmin | admin | agent | qa-agent
	IsActive bool   `json:"is_active"`
	Purpose  string `json:"purpose,omitempty"`
}

// Generate signs a session token carrying the user's identity and role.
func Generate(secret, userID, name, email, role string, isActive bool, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, name, email, role, isActive, issuer, expMinutes, PurposeSession)
}

// GenerateReset signs a time-boxed password-reset token for the user.
func GenerateReset(secret, userID, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, "", "", "", false, issuer, expMinutes, PurposePasswordReset)
}

func generate(secret, userID, name, email, role string, isActive bool, issuer string, expMinutes int, purpose string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		Name:     name,
		Email:    email,
		Role:     role,
		IsActive: isActive,
		Purpose:  purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token signature and expiry and returns the claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// ParseSession validates a token and additionally requires the session purpose.
func ParseSession(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "" && claims.Purpose != PurposeSession {
		return nil, fmt.Errorf("token is not a session token")
	}
	return claims, nil
}

// ParseReset validates a token and requires the password-reset purpose.
func ParseReset(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != PurposePasswordReset {
		return nil, fmt.Errorf("token is not a password-reset token")
	}
	return claims, nil
}
