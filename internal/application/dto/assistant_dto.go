package dto

// AssistantSummaryRequest body de POST /api/assistant/alerts-summary.
// question es opcional; si viene vacío el asistente resume el estado general.
type AssistantSummaryRequest struct {
	Question string `json:"question"`
}

// AssistantSummaryDTO respuesta del asistente IA sobre las alertas vigentes.
type AssistantSummaryDTO struct {
	Summary         string   `json:"summary"`          // resumen en lenguaje natural (español)
	PriorityActions []string `json:"priority_actions"` // acciones sugeridas, más urgente primero
	RiskLevel       string   `json:"risk_level"`       // bajo | medio | alto | critico
}
