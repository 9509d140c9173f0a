package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto para los campos opcionales del producto.
const (
	DefaultMinStock    = 10
	DefaultSafetyStock = 5
)

// Product representa un producto o SKU del catálogo de inventario.
// Los campos opcionales son punteros; el motor de analítica resuelve sus
// valores efectivos una sola vez por producto (ver analytics.ResolveParams),
// la entidad solo guarda el dato crudo.
type Product struct {
	ID             string
	SKU            string // código único del producto
	Name           string
	Category       string
	Price          decimal.Decimal  // precio de venta unitario
	Cost           *decimal.Decimal // costo unitario; nil => se asume igual al precio (margen 0)
	Stock          int              // existencias actuales; invariante: >= 0
	MinStock       *int             // umbral mínimo; nil => DefaultMinStock
	MaxStock       *int             // umbral máximo; nil => sin control de sobre-stock
	SafetyStock    *int             // stock de seguridad fijado manualmente; nil => DefaultSafetyStock
	OrderingCost   *decimal.Decimal // costo de emitir una orden de compra
	StorageCost    *decimal.Decimal // costo de almacenamiento por unidad-año
	ExpirationDate *time.Time       // nil => no perecedero
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveMinStock devuelve el umbral mínimo aplicable (DefaultMinStock si no está definido).
func (p *Product) EffectiveMinStock() int {
	if p.MinStock != nil {
		return *p.MinStock
	}
	return DefaultMinStock
}

// EffectiveCost devuelve el costo unitario aplicable (el precio de venta si no hay costo).
func (p *Product) EffectiveCost() decimal.Decimal {
	if p.Cost != nil {
		return *p.Cost
	}
	return p.Price
}
