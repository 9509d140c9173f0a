package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertDTO alerta accionable de inventario, respuesta de GET /api/alerts.
// threshold y current_value son el par diagnóstico opcional que el panel de
// alertas muestra junto al mensaje; product_id permite el deep-link al producto.
type AlertDTO struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Type         string           `json:"type"`     // low_stock | out_of_stock | excess_stock | expiring
	Priority     string           `json:"priority"` // critical | high | medium
	Message      string           `json:"message"`
	Threshold    *decimal.Decimal `json:"threshold,omitempty"`
	CurrentValue *decimal.Decimal `json:"current_value,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
