// Package reports implementa la generación de reportes descargables del panel.
package reports

import (
	"context"
	"time"

	"github.com/Detencio/SuperSetBI/internal/application/dto"
)

// AlertReportGenerator puerto de generación del reporte PDF de alertas.
type AlertReportGenerator interface {
	GenerateAlertReport(ctx context.Context, alerts []dto.AlertDTO, generatedAt time.Time) ([]byte, error)
}
