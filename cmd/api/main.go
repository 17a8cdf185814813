package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/intertech/sales-automation-api/internal/application/analytics"
	"github.com/intertech/sales-automation-api/internal/application/auth"
	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/infrastructure/export"
	"github.com/intertech/sales-automation-api/internal/infrastructure/mail"
	"github.com/intertech/sales-automation-api/internal/infrastructure/postgres"
	httpRouter "github.com/intertech/sales-automation-api/internal/interfaces/http"
	"github.com/intertech/sales-automation-api/pkg/config"
	"github.com/intertech/sales-automation-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("loading configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	autoSaleRepo := postgres.NewAutoSaleRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	historyRepo := postgres.NewSaleHistoryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewSMTPMailer(cfg.SMTP)
	csvWriter := export.NewCSVWriter()
	xlsxWriter := export.NewXLSXWriter()

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.Expiration,
		ResetExpMinutes: cfg.JWT.ResetExpiration,
		Issuer:          cfg.JWT.Issuer,
	}, cfg.App.FrontendURL, cfg.Bulk.EmailDomain)

	saleUC := usecase.NewSaleUseCase(saleRepo, historyRepo, txRunner, csvWriter)
	autoSaleUC := usecase.NewAutoSaleUseCase(autoSaleRepo, historyRepo, txRunner, csvWriter)
	leadUC := usecase.NewLeadUseCase(leadRepo, historyRepo, txRunner)
	historyUC := usecase.NewSaleHistoryUseCase(historyRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sales Automation API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SaleUC:      saleUC,
		AutoSaleUC:  autoSaleUC,
		LeadUC:      leadUC,
		HistoryUC:   historyUC,
		DashboardUC: dashboardUC,
		SheetWriter: xlsxWriter,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
