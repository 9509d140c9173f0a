package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard ejecutivo.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetKPIs godoc
// @Summary      Snapshot de KPIs del inventario
// @Description  Devuelve los indicadores agregados del catálogo completo: valor
//               total de stock, conteos por estado, rotación, días de inventario,
//               distribución ABC e índice de liquidez. Cacheado en Redis si está habilitado.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.KPISnapshotDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	snap, err := h.uc.GetKPIs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(snap)
}
