package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/pkg/jwt"
)

// Locals key for the authenticated actor.
const LocalActor = "actor"

// AuthMiddleware validates the Bearer session token and stores the actor
// in c.Locals. Password-reset tokens are rejected here; they only open
// the reset endpoint.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := actorFromHeader(c, jwtSecret)
		if err != nil {
			return err
		}
		if actor == nil {
			return domain.NewAuthentication("Authentication invalid")
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// OptionalAuthMiddleware loads the actor when a valid token is present
// and passes through anonymously otherwise. Registration uses it: the
// caller's role, if any, gates which roles may be created.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		actor, err := actorFromHeader(c, jwtSecret)
		if err != nil {
			return err
		}
		if actor != nil {
			c.Locals(LocalActor, actor)
		}
		return c.Next()
	}
}

func actorFromHeader(c *fiber.Ctx, jwtSecret string) (*dto.Actor, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, domain.NewAuthentication("Authentication invalid")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, domain.NewAuthentication("Authentication invalid")
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, domain.NewAuthentication("Authentication invalid")
	}
	claims, err := jwt.ParseSession(jwtSecret, tokenString)
	if err != nil {
		return nil, domain.NewAuthentication("Authentication invalid")
	}
	if !claims.IsActive {
		return nil, domain.NewAuthentication("Account is deactivated. Please contact an admin.")
	}
	return &dto.Actor{
		ID:       claims.UserID,
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     claims.Role,
		IsActive: claims.IsActive,
	}, nil
}

// GetActor returns the authenticated actor, nil when the request is
// anonymous.
func GetActor(c *fiber.Ctx) *dto.Actor {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	actor, _ := v.(*dto.Actor)
	return actor
}

// GetRole returns the actor's role, empty for anonymous requests.
func GetRole(c *fiber.Ctx) string {
	if actor := GetActor(c); actor != nil {
		return actor.Role
	}
	return ""
}
