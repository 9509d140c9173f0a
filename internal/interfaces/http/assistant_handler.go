package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/application/usecase"
	"github.com/Detencio/SuperSetBI/internal/domain"
)

// AssistantHandler maneja los endpoints del asistente IA de inventario.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// SummarizeAlerts godoc
// @Summary      Resumen IA de las alertas activas
// @Description  Envía las alertas vigentes al modelo de lenguaje y devuelve un
//               resumen ejecutivo con acciones prioritarias y nivel de riesgo.
//               Timeout interno de 10 s.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssistantSummaryRequest  false  "question (opcional): pregunta de negocio para enfocar el resumen"
// @Success      200  {object}  dto.AssistantSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/assistant/alerts-summary [post]
func (h *AssistantHandler) SummarizeAlerts(c *fiber.Ctx) error {
	var req dto.AssistantSummaryRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
			})
		}
	}

	result, err := h.uc.SummarizeAlerts(c.Context(), req)
	if err != nil {
		if isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Code: "TIMEOUT", Message: "el asistente IA tardó demasiado; intenta de nuevo",
			})
		}
		if errors.Is(err, domain.ErrUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el asistente IA no está configurado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(result)
}

// isTimeout detecta errores de timeout/cancelación de contexto en el mensaje de error.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded")
}
