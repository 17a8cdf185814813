// Package auth implements the identity use cases: registration with
// role gating, login, password reset and account suspension.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/application/ports"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
	"github.com/intertech/sales-automation-api/pkg/jwt"
)

// ForgotPasswordMsg is always returned to the caller regardless of whether
// the email exists, to prevent account enumeration.
const ForgotPasswordMsg = "If the email exists, a reset link has been sent"

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret          string
	ExpMinutes      int
	ResetExpMinutes int
	Issuer          string
}

// AuthUseCase identity and access use cases.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	mailer      ports.Mailer
	jwtCfg      JWTConfig
	frontendURL string
	emailDomain string
}

// NewAuthUseCase builds the auth use case. frontendURL is the base for
// reset links; emailDomain is appended to bulk-generated emails.
func NewAuthUseCase(userRepo repository.UserRepository, mailer ports.Mailer, jwtCfg JWTConfig, frontendURL, emailDomain string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		frontendURL: frontendURL,
		emailDomain: emailDomain,
	}
}

// Register creates a user. Role assignment is gated by the caller:
//
//   - unauthenticated: agent (default) or qa-agent; superadmin only while
//     none exists yet; admin never.
//   - authenticated superadmin: any role.
//   - authenticated admin: agent only.
//
// Any other combination fails with an AuthorizationError.
func (uc *AuthUseCase) Register(ctx context.Context, actor *dto.Actor, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.NewBadRequest("Please provide name, email and password")
	}
	if in.Role != "" && !entity.IsValidRole(in.Role) {
		return nil, domain.NewBadRequest("Invalid role provided")
	}

	role := in.Role
	createdBy := ""
	if actor != nil {
		// An omitted role means a plain agent, for admins and
		// superadmins alike.
		if role == "" {
			role = entity.RoleAgent
		}
		switch {
		case actor.Role == entity.RoleSuperadmin:
			createdBy = actor.ID
		case actor.Role == entity.RoleAdmin && role == entity.RoleAgent:
			createdBy = actor.ID
		default:
			return nil, domain.NewAuthorization("Not authorized to create this role")
		}
	} else {
		switch role {
		case entity.RoleSuperadmin:
			n, err := uc.userRepo.CountByRole(ctx, entity.RoleSuperadmin)
			if err != nil {
				return nil, err
			}
			if n > 0 {
				return nil, domain.NewAuthorization("Superadmin already exists")
			}
		case entity.RoleAdmin:
			return nil, domain.NewAuthorization("Admins can only be created by superadmins")
		case entity.RoleQAAgent:
			// allowed as-is
		default:
			role = entity.RoleAgent
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.sessionToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:  dto.UserSummary{Name: user.Name, Email: user.Email, Role: user.Role},
		Token: token,
	}, nil
}

// Login verifies credentials and returns a session token plus the public
// summary. Unknown email, inactive account and bad password all fail with
// an AuthenticationError.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewBadRequest("Please provide email and password")
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewAuthentication("Invalid Credentials")
	}
	if !user.IsActive {
		return nil, domain.NewAuthentication("Account is deactivated. Please contact an admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.NewAuthentication("Invalid Credentials")
	}

	token, err := uc.sessionToken(user)
	if err != nil {
		return nil, err
	}
	active := user.IsActive
	return &dto.AuthResponse{
		User: dto.UserSummary{
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: &active,
		},
		Token: token,
	}, nil
}

// ForgotPassword stores a 1-hour single-use reset token and emails the
// reset link. The returned message is generic whether or not the email
// exists; only delivery failures surface as errors.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", domain.NewBadRequest("Please provide email")
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		log.Debug().Str("email", email).Msg("password reset requested for unknown email")
		return ForgotPasswordMsg, nil
	}

	resetToken, err := jwt.GenerateReset(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ResetExpMinutes)
	if err != nil {
		return "", err
	}
	expires := time.Now().Add(time.Duration(uc.jwtCfg.ResetExpMinutes) * time.Minute)
	user.PasswordResetToken = resetToken
	user.PasswordResetExpires = &expires
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	resetURL := uc.frontendURL + "/reset-password/" + resetToken
	if err := uc.mailer.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("reset email delivery failed")
		return "", domain.NewBadRequest("Failed to send reset email")
	}
	return ForgotPasswordMsg, nil
}

// ResetPassword validates the token signature, expiry and stored-token
// match, then replaces the password and invalidates the token.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return domain.NewBadRequest("Please provide token and password")
	}
	if _, err := jwt.ParseReset(uc.jwtCfg.Secret, token); err != nil {
		return domain.NewBadRequest("Invalid or expired token")
	}
	user, err := uc.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewBadRequest("Invalid or expired token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	return uc.userRepo.Update(ctx, user)
}

// GetAdmins lists admin accounts.
func (uc *AuthUseCase) GetAdmins(ctx context.Context) ([]dto.UserSummary, error) {
	return uc.listByRole(ctx, entity.RoleAdmin, false)
}

// GetAgents lists agent accounts including their active flag.
func (uc *AuthUseCase) GetAgents(ctx context.Context) ([]dto.UserSummary, error) {
	return uc.listByRole(ctx, entity.RoleAgent, true)
}

func (uc *AuthUseCase) listByRole(ctx context.Context, role string, withActive bool) ([]dto.UserSummary, error) {
	users, err := uc.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		s := dto.UserSummary{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
		if withActive {
			active := u.IsActive
			s.IsActive = &active
		}
		out = append(out, s)
	}
	return out, nil
}

// GetAgentByID returns one agent. 404 when absent, 400 when the target is
// not an agent.
func (uc *AuthUseCase) GetAgentByID(ctx context.Context, id string) (*dto.UserSummary, error) {
	agent, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.NewNotFound(id)
	}
	if agent.Role != entity.RoleAgent {
		return nil, domain.NewBadRequest("Can only view details for agents")
	}
	active := agent.IsActive
	return &dto.UserSummary{
		ID:        agent.ID,
		Name:      agent.Name,
		Email:     agent.Email,
		Role:      agent.Role,
		IsActive:  &active,
		CreatedAt: agent.CreatedAt,
	}, nil
}

// ToggleAgentActive flips the agent's active flag. This is the only
// account-suspension mechanism; users are never deleted.
func (uc *AuthUseCase) ToggleAgentActive(ctx context.Context, id string) (*dto.ToggleActiveResponse, error) {
	agent, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.NewNotFound(id)
	}
	if agent.Role != entity.RoleAgent {
		return nil, domain.NewBadRequest("Can only toggle status for agents")
	}

	agent.IsActive = !agent.IsActive
	if err := uc.userRepo.Update(ctx, agent); err != nil {
		return nil, err
	}

	verb := "deactivated"
	if agent.IsActive {
		verb = "activated"
	}
	active := agent.IsActive
	return &dto.ToggleActiveResponse{
		Msg: "Agent " + verb + " successfully",
		Agent: dto.UserSummary{
			Name:     agent.Name,
			Email:    agent.Email,
			Role:     agent.Role,
			IsActive: &active,
		},
	}, nil
}

func (uc *AuthUseCase) sessionToken(u *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Name, u.Email, u.Role, u.IsActive, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
