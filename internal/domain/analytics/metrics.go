package analytics

import "math"

// Parámetros fijos del motor. El lead time y la ventana de ventas no se
// modelan por producto; el nivel de servicio objetivo alimenta el cálculo
// de stock de seguridad por z-score.
const (
	LeadTimeDays       = 7  // días de reaprovisionamiento del proveedor
	SalesWindowDays    = 30 // ventana de normalización de la demanda diaria
	TargetServiceLevel = 95 // nivel de servicio objetivo (%)

	// NeverMovedSentinel días sin movimiento cuando el producto no tiene historial.
	NeverMovedSentinel = 999
	// InfiniteCoverageDays cobertura reportada cuando no hay ventas recientes.
	InfiniteCoverageDays = 999
)

// zScores nivel de servicio (%) → z de la distribución normal estándar.
var zScores = map[float64]float64{
	95:   1.65,
	98:   2.05,
	99:   2.33,
	99.9: 3.09,
}

// defaultZScore se aplica ante niveles de servicio no reconocidos (95% de confianza).
const defaultZScore = 1.65

// ReorderPoint calcula el punto de reorden: demanda diaria promedio × lead time
// más el stock de seguridad, redondeado hacia arriba. Con demanda cero devuelve
// ceil(safetyStock).
func ReorderPoint(avgDailyDemand float64, leadTimeDays int, safetyStock float64) int {
	return int(math.Ceil(avgDailyDemand*float64(leadTimeDays) + safetyStock))
}

// EconomicOrderQuantity calcula la cantidad económica de pedido (EOQ, fórmula
// de Wilson): ceil(sqrt(2·D·S / H)). Devuelve 0 si el costo de almacenamiento
// por unidad no es positivo (evita la división por cero).
func EconomicOrderQuantity(annualDemand, orderingCost, holdingCostPerUnit float64) int {
	if holdingCostPerUnit <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(2 * annualDemand * orderingCost / holdingCostPerUnit)))
}

// SafetyStock calcula el stock de seguridad por el método del z-score:
// ceil(z × sqrt(leadTime × varianza de la demanda)). Niveles de servicio no
// reconocidos caen al z del 95% en lugar de fallar.
func SafetyStock(serviceLevelPct float64, leadTimeDays int, demandVariance float64) int {
	z, ok := zScores[serviceLevelPct]
	if !ok {
		z = defaultZScore
	}
	return int(math.Ceil(z * math.Sqrt(float64(leadTimeDays)*demandVariance)))
}
