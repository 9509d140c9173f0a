// Package usecase contiene los casos de uso transversales de la aplicación.
package usecase

import (
	"context"
	"fmt"
	"time"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/application/ports"
)

// llmTimeout tope por llamada al LLM; las latencias externas no deben
// bloquear los goroutines del servidor.
const llmTimeout = 10 * time.Second

// AssistantUseCase orquesta el asistente IA del dashboard: toma las alertas
// vigentes del motor de analítica y pide al LLM un resumen en lenguaje
// natural con acciones priorizadas.
type AssistantUseCase struct {
	dashboard *appanalytics.DashboardUseCase
	llm       ports.LLMService
}

// NewAssistantUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAssistantUseCase(dashboard *appanalytics.DashboardUseCase, llm ports.LLMService) *AssistantUseCase {
	return &AssistantUseCase{dashboard: dashboard, llm: llm}
}

// SummarizeAlerts genera las alertas del momento y delega el resumen al LLM.
// Sin alertas vigentes responde localmente sin gastar una llamada externa.
func (uc *AssistantUseCase) SummarizeAlerts(
	ctx context.Context,
	req dto.AssistantSummaryRequest,
) (*dto.AssistantSummaryDTO, error) {
	alerts, err := uc.dashboard.GetAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("asistente: alertas: %w", err)
	}

	if len(alerts) == 0 {
		return &dto.AssistantSummaryDTO{
			Summary:         "No hay alertas de inventario vigentes. El portafolio está dentro de los umbrales configurados.",
			PriorityActions: []string{},
			RiskLevel:       "bajo",
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	summary, err := uc.llm.SummarizeAlerts(ctx, alerts, req.Question)
	if err != nil {
		return nil, fmt.Errorf("asistente: resumen IA: %w", err)
	}
	return summary, nil
}
