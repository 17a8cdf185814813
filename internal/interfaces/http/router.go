package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intertech/sales-automation-api/internal/application/analytics"
	"github.com/intertech/sales-automation-api/internal/application/auth"
	"github.com/intertech/sales-automation-api/internal/application/ports"
	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SaleUC      *usecase.SaleUseCase
	AutoSaleUC  *usecase.AutoSaleUseCase
	LeadUC      *usecase.LeadUseCase
	HistoryUC   *usecase.SaleHistoryUseCase
	DashboardUC *analytics.DashboardUseCase
	SheetWriter ports.SheetWriter
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	authRequired := AuthMiddleware(deps.JWTSecret)
	authOptional := OptionalAuthMiddleware(deps.JWTSecret)

	// Auth and user administration
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SheetWriter)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	authGroup.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	authGroup.Post("/public-register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authOptional, authHandler.Register)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/admins", authRequired, RequirePolicy(ActionUserListAdmins), authHandler.GetAdmins)
	authGroup.Get("/agents", authRequired, RequirePolicy(ActionUserListAgents), authHandler.GetAgents)
	authGroup.Get("/agents/:id", authRequired, RequirePolicy(ActionUserManageAgent), authHandler.GetAgentByID)
	authGroup.Patch("/agents/:id/toggle-active", authRequired, RequirePolicy(ActionUserManageAgent), authHandler.ToggleAgentActive)
	authGroup.Post("/bulk-create-users", authRequired, RequirePolicy(ActionUserBulkCreate), authHandler.BulkCreateUsers)
	authGroup.Get("/dashboard-stats", authRequired, RequirePolicy(ActionDashboardView), dashboardHandler.Stats)
	authGroup.Get("/dashboard-autosales-stats", authRequired,
		RequireRole(entity.RoleSuperadmin, entity.RoleAdmin, entity.RoleQAAgent), dashboardHandler.AutoSalesStats)
	authGroup.Get("/graph-stats", authRequired, RequirePolicy(ActionDashboardView), dashboardHandler.GraphStats)
	authGroup.Get("/recent-sales", authRequired, RequirePolicy(ActionDashboardView), dashboardHandler.RecentSales)

	// Home-warranty sales
	sales := api.Group("/sales", authRequired)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", RequirePolicy(ActionSaleCreate), saleHandler.Create)
	sales.Get("/", RequirePolicy(ActionSaleList), saleHandler.List)
	sales.Get("/export", RequirePolicy(ActionSaleExport), saleHandler.ExportCSV)
	sales.Get("/dashboard/agent-sales-counts", RequirePolicy(ActionAgentCounts), dashboardHandler.AgentSalesCounts)
	sales.Patch("/:id", RequirePolicy(ActionSaleUpdate), saleHandler.Update)
	sales.Delete("/:id", RequirePolicy(ActionSaleDelete), saleHandler.Delete)

	// Auto-warranty sales
	autoSales := api.Group("/auto-sales", authRequired)
	autoSaleHandler := NewAutoSaleHandler(deps.AutoSaleUC)
	autoSales.Post("/", RequirePolicy(ActionSaleCreate), autoSaleHandler.Create)
	autoSales.Get("/", RequirePolicy(ActionSaleList), autoSaleHandler.List)
	autoSales.Get("/export", RequirePolicy(ActionSaleExport), autoSaleHandler.ExportCSV)
	autoSales.Patch("/:id", RequirePolicy(ActionSaleUpdate), autoSaleHandler.Update)
	autoSales.Delete("/:id", RequirePolicy(ActionSaleDelete), autoSaleHandler.Delete)

	// Leads
	leads := api.Group("/leads", authRequired)
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", RequirePolicy(ActionSaleCreate), leadHandler.Create)
	leads.Get("/", RequirePolicy(ActionLeadList), leadHandler.List)
	leads.Patch("/:id", RequirePolicy(ActionSaleUpdate), leadHandler.Update)
	leads.Delete("/:id", RequirePolicy(ActionSaleDelete), leadHandler.Delete)

	// Audit trail, shared by all three record types
	histories := api.Group("/sale-history", authRequired)
	historyHandler := NewSaleHistoryHandler(deps.HistoryUC)
	histories.Post("/history", historyHandler.CreateWithDetails)
	histories.Get("/:id/history", historyHandler.GetHistory)
	histories.Post("/:id/comments", historyHandler.AddComment)
	histories.Patch("/:id/status", historyHandler.UpdateStatus)
}
