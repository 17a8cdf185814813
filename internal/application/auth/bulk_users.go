package auth

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

const (
	bulkPasswordLength  = 12
	bulkPasswordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// BulkCreateUsers provisions one account per name, deriving the email
// from the name and the configured domain. Names whose derived email is
// already taken are reported back with password "Already Exists" and
// skipped. Generated passwords are random; they are returned exactly
// once, in the credential rows.
func (uc *AuthUseCase) BulkCreateUsers(ctx context.Context, in dto.BulkCreateRequest) ([]dto.CredentialRow, error) {
	if len(in.Names) == 0 {
		return nil, domain.NewBadRequest("Please provide a list of names")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAgent
	}
	if role != entity.RoleAgent && role != entity.RoleQAAgent {
		return nil, domain.NewBadRequest("Invalid role provided")
	}

	rows := make([]dto.CredentialRow, 0, len(in.Names))
	for _, name := range in.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		email := slugify(name) + "@" + uc.emailDomain

		existing, err := uc.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			rows = append(rows, dto.CredentialRow{
				Name:     name,
				Email:    email,
				Role:     role,
				Password: "Already Exists",
			})
			continue
		}

		password, err := randomPassword(bulkPasswordLength)
		if err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			IsActive:     true,
			CreatedAt:    now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		rows = append(rows, dto.CredentialRow{
			Name:      name,
			Email:     email,
			Role:      role,
			Password:  password,
			CreatedAt: now,
		})
	}
	return rows, nil
}

// slugify lowercases the name, folds diacritics to their base letters and
// strips everything outside [a-z0-9].
func slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomPassword(length int) (string, error) {
	max := big.NewInt(int64(len(bulkPasswordCharset)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = bulkPasswordCharset[n.Int64()]
	}
	return string(b), nil
}
