package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intertech/sales-automation-api/internal/application/auth"
	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/application/ports"
	"github.com/intertech/sales-automation-api/internal/domain"
)

// AuthHandler handles registration, login, password reset and user
// administration.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	sheets ports.SheetWriter
}

// NewAuthHandler builds the auth handler. sheets renders the bulk
// provisioning credential workbook.
func NewAuthHandler(uc *auth.AuthUseCase, sheets ports.SheetWriter) *AuthHandler {
	return &AuthHandler{uc: uc, sheets: sheets}
}

// Register creates a user. Reached both publicly (self-registration) and
// authenticated (provisioning), with OptionalAuthMiddleware deciding
// whether an actor is present.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.Register(c.Context(), GetActor(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ForgotPassword requests a reset link. Always 200 with a generic message
// unless delivery itself fails.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	msg, err := h.uc.ForgotPassword(c.Context(), in.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Msg: msg})
}

// ResetPassword completes a reset using the emailed token.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	if err := h.uc.ResetPassword(c.Context(), in.Token, in.Password); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Msg: "Password reset successful"})
}

// GetAdmins lists admin accounts.
func (h *AuthHandler) GetAdmins(c *fiber.Ctx) error {
	admins, err := h.uc.GetAdmins(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.UserListResponse{Admins: admins, Count: len(admins)})
}

// GetAgents lists agent accounts.
func (h *AuthHandler) GetAgents(c *fiber.Ctx) error {
	agents, err := h.uc.GetAgents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.UserListResponse{Agents: agents, Count: len(agents)})
}

// GetAgentByID returns one agent's details.
func (h *AuthHandler) GetAgentByID(c *fiber.Ctx) error {
	agent, err := h.uc.GetAgentByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.AgentResponse{Agent: *agent})
}

// ToggleAgentActive flips an agent's active flag.
func (h *AuthHandler) ToggleAgentActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleAgentActive(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// BulkCreateUsers provisions accounts from a list of names and streams
// back the credential workbook. The generated passwords exist nowhere
// else, so the download is the only chance to hand them out.
func (h *AuthHandler) BulkCreateUsers(c *fiber.Ctx) error {
	var in dto.BulkCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	rows, err := h.uc.BulkCreateUsers(c.Context(), in)
	if err != nil {
		return err
	}

	ds := ports.Dataset{Headers: []string{"Name", "Email", "Role", "Password", "Created At"}}
	for _, r := range rows {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.Format("2006-01-02")
		}
		ds.Rows = append(ds.Rows, []string{r.Name, r.Email, r.Role, r.Password, created})
	}
	book, err := h.sheets.WriteSheet("User List", ds)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="users.xlsx"`)
	return c.Send(book)
}
