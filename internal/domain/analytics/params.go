package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

// Valores por defecto de los costos de orden y almacenamiento cuando el
// producto no los define.
var (
	defaultOrderingCost = decimal.NewFromInt(50)
	defaultStorageCost  = decimal.NewFromInt(2)
)

// EffectiveParams son los valores efectivos que usa el cálculo, resueltos una
// sola vez por producto. Separa el dato crudo almacenado (campos opcionales de
// la entidad) de los valores con los que realmente se computa.
type EffectiveParams struct {
	MinStock     int
	SafetyStock  int
	MaxStock     int
	HasMaxStock  bool
	Cost         decimal.Decimal
	OrderingCost float64
	StorageCost  float64
}

// ResolveParams aplica los defaults documentados: minStock 10, safetyStock 5,
// costo = precio de venta, orderingCost 50, storageCost 2.
func ResolveParams(p *entity.Product) EffectiveParams {
	params := EffectiveParams{
		MinStock:     p.EffectiveMinStock(),
		SafetyStock:  entity.DefaultSafetyStock,
		Cost:         p.EffectiveCost(),
		OrderingCost: defaultOrderingCost.InexactFloat64(),
		StorageCost:  defaultStorageCost.InexactFloat64(),
	}
	if p.SafetyStock != nil {
		params.SafetyStock = *p.SafetyStock
	}
	if p.MaxStock != nil {
		params.MaxStock = *p.MaxStock
		params.HasMaxStock = true
	}
	if p.OrderingCost != nil {
		params.OrderingCost = p.OrderingCost.InexactFloat64()
	}
	if p.StorageCost != nil {
		params.StorageCost = p.StorageCost.InexactFloat64()
	}
	return params
}
