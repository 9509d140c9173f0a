package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/application/ports"
	"github.com/Detencio/SuperSetBI/internal/domain"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Eres un analista de inventario experto. Recibirás la lista de alertas vigentes
del sistema de inventario (stock bajo, agotados, sobre-stock, vencimientos próximos) y opcionalmente una
pregunta del usuario. Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `)
con esta estructura exacta:
{
  "summary": "<resumen ejecutivo en español del estado del inventario, máximo 400 caracteres>",
  "priority_actions": ["<acción concreta, la más urgente primero>", "..."],
  "risk_level": "<bajo | medio | alto | critico>"
}

Reglas:
- summary: menciona cuántas alertas hay por tipo y los productos más urgentes por nombre.
- priority_actions: entre 1 y 5 acciones accionables (reponer, liquidar, redistribuir, revisar vencimientos).
- risk_level: critico si hay productos agotados, alto si hay stock crítico, medio si solo hay sobre-stock o vencimientos, bajo en otro caso.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`
)

// AnthropicService adaptador que implementa LLMService usando la API REST de
// Anthropic (Claude). Usa net/http de la librería estándar; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// llmSummaryPayload estructura que el modelo debe devolver.
type llmSummaryPayload struct {
	Summary         string   `json:"summary"`
	PriorityActions []string `json:"priority_actions"`
	RiskLevel       string   `json:"risk_level"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque Claude lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// SummarizeAlerts serializa las alertas vigentes, consulta a Claude y devuelve
// el resumen estructurado.
func (s *AnthropicService) SummarizeAlerts(
	ctx context.Context,
	alerts []dto.AlertDTO,
	question string,
) (*dto.AssistantSummaryDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado: %w", domain.ErrUnavailable)
	}

	alertsJSON, err := json.Marshal(alerts)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar alertas: %w", err)
	}

	userContent := fmt.Sprintf("Alertas vigentes (JSON):\n%s", alertsJSON)
	if question != "" {
		userContent += fmt.Sprintf("\n\nPregunta del usuario: %s", question)
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	rawText := anthResp.Content[0].Text

	// Parseo seguro: extraer solo el bloque JSON aunque Claude añada texto adicional.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}

	var summary llmSummaryPayload
	if err := json.Unmarshal([]byte(cleanJSON), &summary); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON del resumen: %w (JSON extraído: %s)", err, cleanJSON)
	}

	return &dto.AssistantSummaryDTO{
		Summary:         summary.Summary,
		PriorityActions: summary.PriorityActions,
		RiskLevel:       normalizeRiskLevel(summary.RiskLevel),
	}, nil
}

// normalizeRiskLevel acota el nivel de riesgo a los valores conocidos;
// cualquier otro texto del modelo cae a "medio".
func normalizeRiskLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "bajo", "medio", "alto", "critico":
		return strings.ToLower(strings.TrimSpace(level))
	case "crítico":
		return "critico"
	default:
		return "medio"
	}
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		// Quitar la línea de apertura (```json o ```)
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		// Quitar el cierre ```
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
