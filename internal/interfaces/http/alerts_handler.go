package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/dto"
)

// AlertsHandler maneja los endpoints de alertas de inventario.
type AlertsHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *appanalytics.DashboardUseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// List godoc
// @Summary      Alertas activas de inventario
// @Description  Genera y devuelve las alertas vigentes: stock bajo, sin stock,
//               sobre-stock y productos por vencer. Se calculan al vuelo sobre
//               el estado actual del catálogo.
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   dto.AlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertsHandler) List(c *fiber.Ctx) error {
	alerts, err := h.uc.GetAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(alerts)
}
