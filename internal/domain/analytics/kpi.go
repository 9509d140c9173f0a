// Package analytics implementa el motor de analítica y alertas de inventario:
// primitivas de métricas (punto de reorden, EOQ, stock de seguridad), el
// snapshot de KPIs del portafolio, el análisis por producto y el generador de
// alertas. Todo el paquete es computación pura sobre colecciones en memoria:
// sin I/O, sin estado compartido, seguro para invocación concurrente.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

var (
	hundred      = decimal.NewFromInt(100)
	daysPerYear  = decimal.NewFromInt(365)
	excessFactor = decimal.NewFromFloat(1.2) // sobre-stock: stock >= maxStock * 1.2
	abcBandA     = decimal.NewFromFloat(0.80)
	abcBandB     = decimal.NewFromFloat(0.95)
)

// Placeholders: el nivel de servicio y la exactitud de inventario no se miden
// contra datos reales de cumplimiento ni conteos cíclicos; son constantes y los
// consumidores no deben tratarlos como valores calculados.
var (
	placeholderServiceLevel      = decimal.NewFromInt(95)
	placeholderInventoryAccuracy = decimal.NewFromFloat(98.5)
)

// ABCDistribution porcentaje de productos (por conteo) en cada banda de valor.
// La banda se determina por valor acumulado (80% / 95%) pero el porcentaje
// reportado es de conteo de productos, no de valor.
type ABCDistribution struct {
	APercentage decimal.Decimal
	BPercentage decimal.Decimal
	CPercentage decimal.Decimal
}

// KPISnapshot es la foto de KPIs del portafolio completo. Es un value object
// transitorio: se recalcula en cada invocación y no se persiste.
type KPISnapshot struct {
	TotalStockValue   decimal.Decimal
	TotalProducts     int
	LowStockCount     int
	OutOfStockCount   int
	ExcessStockCount  int
	InventoryTurnover decimal.Decimal
	DaysOfInventory   decimal.Decimal
	ABCDistribution   ABCDistribution
	LiquidityIndex    int
	ServiceLevel      decimal.Decimal
	InventoryAccuracy decimal.Decimal
}

// ComputeKPISnapshot agrega el portafolio completo en un KPISnapshot.
// Con catálogo vacío devuelve el snapshot en ceros (incluidos los
// placeholders) en lugar de propagar NaN o dividir por cero.
func ComputeKPISnapshot(
	products []entity.Product,
	movements []entity.InventoryMovement,
	sales []entity.Sale,
) KPISnapshot {
	_ = movements // el snapshot actual no deriva ningún KPI de los movimientos

	snap := KPISnapshot{
		TotalStockValue:   decimal.Zero,
		InventoryTurnover: decimal.Zero,
		DaysOfInventory:   decimal.Zero,
		ABCDistribution:   zeroDistribution(),
	}
	if len(products) == 0 {
		snap.ServiceLevel = decimal.Zero
		snap.InventoryAccuracy = decimal.Zero
		return snap
	}

	snap.TotalProducts = len(products)
	totalValue := decimal.Zero
	for i := range products {
		p := &products[i]
		totalValue = totalValue.Add(stockValue(p))

		if p.Stock == 0 {
			snap.OutOfStockCount++
		}
		if p.Stock <= p.EffectiveMinStock() {
			snap.LowStockCount++
		}
		if p.MaxStock != nil && exceedsMaxStock(p.Stock, *p.MaxStock) {
			snap.ExcessStockCount++
		}
	}
	snap.TotalStockValue = totalValue.Round(2)

	totalSales := decimal.Zero
	for i := range sales {
		totalSales = totalSales.Add(sales[i].TotalAmount)
	}
	if totalValue.IsPositive() {
		snap.InventoryTurnover = totalSales.Div(totalValue).Round(2)
	}
	if snap.InventoryTurnover.IsPositive() {
		snap.DaysOfInventory = daysPerYear.Div(snap.InventoryTurnover).Round(1)
	}

	snap.ABCDistribution = classifyABC(products, totalValue)
	snap.LiquidityIndex = liquidityBucket(snap.InventoryTurnover)
	snap.ServiceLevel = placeholderServiceLevel
	snap.InventoryAccuracy = placeholderInventoryAccuracy
	return snap
}

// classifyABC ordena los productos por valor de stock descendente, acumula el
// valor recorriendo la lista y asigna banda A mientras el acumulado no supere
// el 80% del valor total, B hasta el 95% y C el resto. Reporta el porcentaje
// de conteo de productos por banda. Con valor total cero la distribución es
// toda en ceros (no hay reparto definible).
func classifyABC(products []entity.Product, totalValue decimal.Decimal) ABCDistribution {
	if len(products) == 0 || !totalValue.IsPositive() {
		return zeroDistribution()
	}

	values := make([]decimal.Decimal, len(products))
	for i := range products {
		values[i] = stockValue(&products[i])
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].GreaterThan(values[j])
	})

	limitA := totalValue.Mul(abcBandA)
	limitB := totalValue.Mul(abcBandB)

	var countA, countB, countC int
	cumulative := decimal.Zero
	for _, v := range values {
		cumulative = cumulative.Add(v)
		switch {
		case cumulative.LessThanOrEqual(limitA):
			countA++
		case cumulative.LessThanOrEqual(limitB):
			countB++
		default:
			countC++
		}
	}

	total := decimal.NewFromInt(int64(len(products)))
	pct := func(count int) decimal.Decimal {
		return decimal.NewFromInt(int64(count)).Mul(hundred).Div(total).Round(2)
	}
	return ABCDistribution{
		APercentage: pct(countA),
		BPercentage: pct(countB),
		CPercentage: pct(countC),
	}
}

// liquidityBucket índice de liquidez por tramos de rotación.
func liquidityBucket(turnover decimal.Decimal) int {
	switch {
	case turnover.GreaterThan(decimal.NewFromInt(2)):
		return 85
	case turnover.GreaterThan(decimal.NewFromInt(1)):
		return 65
	default:
		return 45
	}
}

func zeroDistribution() ABCDistribution {
	return ABCDistribution{
		APercentage: decimal.Zero,
		BPercentage: decimal.Zero,
		CPercentage: decimal.Zero,
	}
}

// stockValue valor del stock actual del producto (existencias × precio de venta).
func stockValue(p *entity.Product) decimal.Decimal {
	return decimal.NewFromInt(int64(p.Stock)).Mul(p.Price)
}

// exceedsMaxStock indica sobre-stock: existencias en o por encima del 120% del máximo.
func exceedsMaxStock(stock, maxStock int) bool {
	return decimal.NewFromInt(int64(stock)).
		GreaterThanOrEqual(decimal.NewFromInt(int64(maxStock)).Mul(excessFactor))
}
