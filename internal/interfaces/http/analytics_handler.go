package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/domain"
)

// AnalyticsHandler maneja los endpoints de analítica por producto.
type AnalyticsHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Analítica extendida de productos
// @Description  Devuelve el registro analítico de cada producto (rotación, punto
//               de reorden, EOQ, stock de seguridad, cobertura, margen, ROI,
//               recomendación y nivel de alerta). Filtrable por categoría.
// @Tags         analytics
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría exacta"
// @Success      200  {array}   dto.ProductAnalyticsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/products [get]
func (h *AnalyticsHandler) ListProducts(c *fiber.Ctx) error {
	var req dto.ProductAnalyticsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	list, err := h.uc.GetProductAnalytics(c.Context(), req.Category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(list)
}

// GetProduct godoc
// @Summary      Analítica de un producto
// @Description  Devuelve el registro analítico completo de un producto por ID.
// @Tags         analytics
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductAnalyticsDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/products/{id} [get]
func (h *AnalyticsHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := h.uc.GetProductAnalyticsByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "producto no encontrado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(result)
}
