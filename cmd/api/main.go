package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/reports"
	"github.com/Detencio/SuperSetBI/internal/application/usecase"
	infraai "github.com/Detencio/SuperSetBI/internal/infrastructure/ai"
	infracache "github.com/Detencio/SuperSetBI/internal/infrastructure/cache"
	infrapdf "github.com/Detencio/SuperSetBI/internal/infrastructure/pdf"
	"github.com/Detencio/SuperSetBI/internal/infrastructure/postgres"
	httpRouter "github.com/Detencio/SuperSetBI/internal/interfaces/http"
	"github.com/Detencio/SuperSetBI/pkg/config"
	"github.com/Detencio/SuperSetBI/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	// Caché de KPIs: si Redis no está disponible arrancamos sin caché en vez de caer.
	kpiCache, err := infracache.NewKPICache(cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, dashboard sin caché")
		kpiCache = infracache.NewNoopKPICache()
	}

	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, movementRepo, saleRepo, kpiCache)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	assistantUC := usecase.NewAssistantUseCase(dashboardUC, anthropicSvc)

	reportGenerator := infrapdf.NewMarotoAlertReportGenerator()
	reportUC := reports.NewReportUseCase(dashboardUC, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SuperSetBI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		AssistantUC: assistantUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
