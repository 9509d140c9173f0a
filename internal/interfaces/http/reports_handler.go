package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/application/reports"
)

// ReportsHandler maneja los endpoints de reportes descargables.
type ReportsHandler struct {
	uc *reports.ReportUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ReportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// AlertsPDF godoc
// @Summary      Reporte PDF de alertas
// @Description  Genera y descarga el reporte PDF con las alertas activas del
//               inventario, agrupadas por prioridad.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/alerts/pdf [get]
func (h *ReportsHandler) AlertsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.AlertsPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	filename := fmt.Sprintf("alertas-inventario-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
