package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

// Actions gated by role. Keeping the whole role policy in one table makes
// the access rules reviewable at a glance instead of scattered through
// handlers.
const (
	ActionSaleCreate      = "sale:create"
	ActionSaleList        = "sale:list"
	ActionSaleUpdate      = "sale:update"
	ActionSaleDelete      = "sale:delete"
	ActionSaleExport      = "sale:export"
	ActionAgentCounts     = "sale:agent-counts"
	ActionLeadList        = "lead:list"
	ActionUserListAdmins  = "user:list-admins"
	ActionUserListAgents  = "user:list-agents"
	ActionUserManageAgent = "user:manage-agent"
	ActionUserBulkCreate  = "user:bulk-create"
	ActionDashboardView   = "dashboard:view"
)

// policy maps each action to the roles allowed to perform it.
var policy = map[string][]string{
	ActionSaleCreate:      {entity.RoleAgent},
	ActionSaleList:        {entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleQAAgent, entity.RoleQAManager},
	ActionSaleUpdate:      {entity.RoleAdmin, entity.RoleSuperadmin},
	ActionSaleDelete:      {entity.RoleAdmin, entity.RoleSuperadmin},
	ActionSaleExport:      {entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleQAAgent, entity.RoleQAManager},
	ActionAgentCounts:     {entity.RoleAgent},
	ActionLeadList:        {entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleQAAgent},
	ActionUserListAdmins:  {entity.RoleSuperadmin},
	ActionUserListAgents:  {entity.RoleAdmin, entity.RoleSuperadmin},
	ActionUserManageAgent: {entity.RoleAdmin, entity.RoleSuperadmin},
	ActionUserBulkCreate:  {entity.RoleAdmin, entity.RoleSuperadmin},
	ActionDashboardView:   {entity.RoleAdmin, entity.RoleSuperadmin, entity.RoleQAAgent, entity.RoleQAManager},
}

// RequirePolicy authorizes the request against the policy table. Runs
// after AuthMiddleware; a role outside the action's list is a 403.
func RequirePolicy(action string) fiber.Handler {
	allowed := policy[action]
	return RequireRole(allowed...)
}

// RequireRole authorizes the request when the actor holds one of the
// given roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return domain.NewAuthentication("Authentication invalid")
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return domain.NewAuthorization("Not authorized to access this route")
	}
}
