package ports

import (
	"context"

	"github.com/Detencio/SuperSetBI/internal/application/dto"
)

// LLMService define el puerto de salida para los servicios de inteligencia
// artificial. Cualquier adaptador (Anthropic, Gemini, mock) debe implementar
// esta interfaz: la capa de aplicación solo conoce este contrato, no la
// implementación concreta.
type LLMService interface {
	// SummarizeAlerts recibe las alertas de inventario vigentes y una pregunta
	// opcional del usuario, y devuelve un resumen en lenguaje natural con
	// acciones priorizadas. El contexto debe llevar un timeout para evitar
	// bloqueos en llamadas externas.
	SummarizeAlerts(
		ctx context.Context,
		alerts []dto.AlertDTO,
		question string,
	) (*dto.AssistantSummaryDTO, error)
}
