// Package http expone la API REST del panel de inventario sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/reports"
	"github.com/Detencio/SuperSetBI/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	AssistantUC *usecase.AssistantUseCase
	ReportUC    *reports.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.GetKPIs)

	// Analítica por producto
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	analytics.Get("/products", analyticsHandler.ListProducts)
	analytics.Get("/products/:id", analyticsHandler.GetProduct)

	// Alertas
	alertsHandler := NewAlertsHandler(deps.DashboardUC)
	api.Get("/alerts", alertsHandler.List)

	// Asistente IA
	assistant := api.Group("/assistant")
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistant.Post("/alerts-summary", assistantHandler.SummarizeAlerts)

	// Reportes
	reportsGroup := api.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ReportUC)
	reportsGroup.Get("/alerts/pdf", reportsHandler.AlertsPDF)
}
