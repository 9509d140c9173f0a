package reports

import (
	"context"
	"fmt"
	"time"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
)

// ReportUseCase orquesta los reportes: carga los datos vía el caso de uso de
// analítica y delega el renderizado al generador.
type ReportUseCase struct {
	dashboard *appanalytics.DashboardUseCase
	generator AlertReportGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(dashboard *appanalytics.DashboardUseCase, generator AlertReportGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// AlertsPDF genera el reporte PDF con las alertas activas del inventario.
func (uc *ReportUseCase) AlertsPDF(ctx context.Context) ([]byte, error) {
	alerts, err := uc.dashboard.GetAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar alertas para reporte: %w", err)
	}
	return uc.generator.GenerateAlertReport(ctx, alerts, time.Now())
}
