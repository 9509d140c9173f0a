package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

// AlertType tipo discreto de alerta de inventario.
type AlertType string

const (
	AlertTypeLowStock    AlertType = "low_stock"
	AlertTypeOutOfStock  AlertType = "out_of_stock"
	AlertTypeExcessStock AlertType = "excess_stock"
	AlertTypeExpiring    AlertType = "expiring"
)

// AlertPriority severidad de la alerta.
type AlertPriority string

const (
	AlertPriorityCritical AlertPriority = "critical"
	AlertPriorityHigh     AlertPriority = "high"
	AlertPriorityMedium   AlertPriority = "medium"
)

// expiringWindowDays ventana de aviso de vencimiento.
const expiringWindowDays = 30

// Alert evento accionable emitido por el generador. Threshold y CurrentValue
// son el par diagnóstico opcional que la UI muestra junto al mensaje.
type Alert struct {
	ID           string
	ProductID    string
	ProductName  string
	Type         AlertType
	Priority     AlertPriority
	Message      string
	Threshold    *decimal.Decimal
	CurrentValue *decimal.Decimal
	CreatedAt    time.Time
}

// GenerateAlerts evalúa cada producto de forma independiente y emite cero, una
// o varias alertas por producto (un producto agotado lleva low_stock y
// out_of_stock a la vez). El orden de salida es el orden de iteración de la
// entrada; no se reordena por severidad — el consumidor reordena si lo
// necesita. Sin estado entre invocaciones: cada llamada recalcula desde cero.
func GenerateAlerts(products []entity.Product, now time.Time) []Alert {
	alerts := make([]Alert, 0, len(products))
	for i := range products {
		alerts = append(alerts, productAlerts(&products[i], now)...)
	}
	return alerts
}

func productAlerts(p *entity.Product, now time.Time) []Alert {
	var alerts []Alert

	minStock := p.EffectiveMinStock()
	stockDec := decimal.NewFromInt(int64(p.Stock))
	halfMin := decimal.NewFromInt(int64(minStock)).Div(decimal.NewFromInt(2))

	switch {
	case p.Stock*2 <= minStock:
		alerts = append(alerts, newAlert(p, AlertTypeLowStock, AlertPriorityCritical,
			fmt.Sprintf("Stock crítico: quedan %d unidades de %s (mínimo %d)", p.Stock, p.Name, minStock),
			&halfMin, &stockDec, now))
	case p.Stock <= minStock:
		minDec := decimal.NewFromInt(int64(minStock))
		alerts = append(alerts, newAlert(p, AlertTypeLowStock, AlertPriorityHigh,
			fmt.Sprintf("Stock bajo: quedan %d unidades de %s (mínimo %d)", p.Stock, p.Name, minStock),
			&minDec, &stockDec, now))
	}

	if p.Stock == 0 {
		alerts = append(alerts, newAlert(p, AlertTypeOutOfStock, AlertPriorityCritical,
			fmt.Sprintf("Producto agotado: %s no tiene existencias", p.Name),
			nil, nil, now))
	}

	if p.MaxStock != nil && exceedsMaxStock(p.Stock, *p.MaxStock) {
		threshold := decimal.NewFromInt(int64(*p.MaxStock)).Mul(excessFactor)
		alerts = append(alerts, newAlert(p, AlertTypeExcessStock, AlertPriorityMedium,
			fmt.Sprintf("Sobre-stock: %s tiene %d unidades (máximo %d)", p.Name, p.Stock, *p.MaxStock),
			&threshold, &stockDec, now))
	}

	if p.ExpirationDate != nil {
		days := daysToExpiry(now, *p.ExpirationDate)
		// Los productos ya vencidos (days <= 0) quedan fuera a propósito:
		// esta alerta avisa vencimientos próximos, no reporta vencidos.
		if days > 0 && days <= expiringWindowDays {
			threshold := decimal.NewFromInt(expiringWindowDays)
			current := decimal.NewFromInt(int64(days))
			alerts = append(alerts, newAlert(p, AlertTypeExpiring, AlertPriorityHigh,
				fmt.Sprintf("Vencimiento próximo: %s vence en %d días", p.Name, days),
				&threshold, &current, now))
		}
	}

	return alerts
}

func newAlert(
	p *entity.Product,
	alertType AlertType,
	priority AlertPriority,
	message string,
	threshold, currentValue *decimal.Decimal,
	now time.Time,
) Alert {
	return Alert{
		ID:           uuid.New().String(),
		ProductID:    p.ID,
		ProductName:  p.Name,
		Type:         alertType,
		Priority:     priority,
		Message:      message,
		Threshold:    threshold,
		CurrentValue: currentValue,
		CreatedAt:    now,
	}
}

// daysToExpiry días hasta el vencimiento, redondeados hacia arriba: un
// producto que vence mañana en la madrugada cuenta como 1 día, no 0.
func daysToExpiry(now, expiration time.Time) int {
	return int(math.Ceil(expiration.Sub(now).Hours() / 24))
}
