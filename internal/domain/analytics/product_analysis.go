package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

// Recommendation acción sugerida para un producto.
type Recommendation string

const (
	RecommendationReplenish Recommendation = "REPLENISH"
	RecommendationLiquidate Recommendation = "LIQUIDATE"
	RecommendationMaintain  Recommendation = "MAINTAIN"
	RecommendationReduce    Recommendation = "REDUCE"
)

// AlertLevel severidad diagnóstica asociada a la recomendación.
type AlertLevel string

const (
	AlertLevelCritical AlertLevel = "CRITICAL"
	AlertLevelHigh     AlertLevel = "HIGH"
	AlertLevelMedium   AlertLevel = "MEDIUM"
	AlertLevelLow      AlertLevel = "LOW"
)

// staleDaysThreshold días sin movimiento a partir de los cuales un producto de
// margen bajo se considera candidato a liquidación.
const staleDaysThreshold = 180

var lowMarginThreshold = decimal.NewFromInt(20)

// ProductAnalysis registro extendido por producto: los campos del producto
// fuente más las métricas diagnósticas y la clasificación de recomendación.
// Derivado puramente de los insumos; no tiene ciclo de vida propio.
type ProductAnalysis struct {
	Product entity.Product

	RotationRate        decimal.Decimal // unidades vendidas / stock actual
	DaysWithoutMovement int             // 999 = nunca se movió
	ReorderPoint        int
	EOQ                 int
	SafetyStock         int             // calculado por z-score (no el override manual)
	CoverageDays        decimal.Decimal // 999 = cobertura efectivamente infinita
	ProfitMarginPct     decimal.Decimal
	ROIScore            decimal.Decimal // margen × rotación; heurística de ranking, no un ROI financiero
	Recommendation      Recommendation
	AlertLevel          AlertLevel
}

// ruleInput hechos ya resueltos sobre los que se evalúan las reglas de decisión.
type ruleInput struct {
	Stock               int
	MinStock            int
	MaxStock            int
	HasMaxStock         bool
	DaysWithoutMovement int
	ProfitMarginPct     decimal.Decimal
}

// decisionRule par (predicado, resultado) de la cascada de recomendación.
type decisionRule struct {
	When           func(in ruleInput) bool
	Recommendation Recommendation
	Level          AlertLevel
}

// recommendationRules es la lista ordenada de reglas de recomendación: se
// evalúan en secuencia fija y gana la primera que aplica. El orden ES la
// prioridad; un producto agotado y estancado se clasifica REPLENISH/CRITICAL,
// nunca LIQUIDATE.
var recommendationRules = []decisionRule{
	{
		// stock en o por debajo de la mitad del mínimo
		When:           func(in ruleInput) bool { return in.Stock*2 <= in.MinStock },
		Recommendation: RecommendationReplenish,
		Level:          AlertLevelCritical,
	},
	{
		When:           func(in ruleInput) bool { return in.Stock <= in.MinStock },
		Recommendation: RecommendationReplenish,
		Level:          AlertLevelHigh,
	},
	{
		// estancado más de 180 días con margen menor al 20%
		When: func(in ruleInput) bool {
			return in.DaysWithoutMovement > staleDaysThreshold &&
				in.ProfitMarginPct.LessThan(lowMarginThreshold)
		},
		Recommendation: RecommendationLiquidate,
		Level:          AlertLevelMedium,
	},
	{
		When: func(in ruleInput) bool {
			return in.HasMaxStock && exceedsMaxStock(in.Stock, in.MaxStock)
		},
		Recommendation: RecommendationReduce,
		Level:          AlertLevelMedium,
	},
	{
		When:           func(in ruleInput) bool { return true },
		Recommendation: RecommendationMaintain,
		Level:          AlertLevelLow,
	},
}

// AnalyzeProduct calcula el registro analítico extendido de un producto a
// partir de sus movimientos y ventas. Los movimientos y ventas de otros
// productos se ignoran, así que es válido pasar las colecciones completas.
// now fija el instante de referencia para staleness y vencimientos.
func AnalyzeProduct(
	p entity.Product,
	movements []entity.InventoryMovement,
	sales []entity.Sale,
	now time.Time,
) ProductAnalysis {
	params := ResolveParams(&p)

	totalSold := 0
	for i := range sales {
		if sales[i].ProductID == p.ID {
			totalSold += sales[i].Quantity
		}
	}
	totalSoldDec := decimal.NewFromInt(int64(totalSold))
	stockDec := decimal.NewFromInt(int64(p.Stock))

	rotation := decimal.Zero
	if p.Stock > 0 {
		rotation = totalSoldDec.Div(stockDec).Round(2)
	}

	daysWithoutMovement := NeverMovedSentinel
	var lastMovement time.Time
	for i := range movements {
		m := &movements[i]
		if m.ProductID == p.ID && m.Date.After(lastMovement) {
			lastMovement = m.Date
		}
	}
	if !lastMovement.IsZero() {
		daysWithoutMovement = int(now.Sub(lastMovement).Hours() / 24)
		if daysWithoutMovement < 0 {
			daysWithoutMovement = 0
		}
	}

	// Margen: el costo cae al precio de venta si no está definido (margen 0).
	// Precio cero no es un margen calculable; se degrada a 0 sin dividir.
	margin := decimal.Zero
	if p.Price.IsPositive() {
		margin = p.Price.Sub(params.Cost).Div(p.Price).Mul(hundred).Round(2)
	}

	avgDailySales := float64(totalSold) / SalesWindowDays

	coverage := decimal.NewFromInt(InfiniteCoverageDays)
	if totalSold > 0 {
		coverage = stockDec.Div(totalSoldDec.Div(decimal.NewFromInt(SalesWindowDays))).Round(1)
	}

	annualDemand := float64(totalSold) * 12

	analysis := ProductAnalysis{
		Product:             p,
		RotationRate:        rotation,
		DaysWithoutMovement: daysWithoutMovement,
		ReorderPoint:        ReorderPoint(avgDailySales, LeadTimeDays, float64(params.SafetyStock)),
		EOQ:                 EconomicOrderQuantity(annualDemand, params.OrderingCost, params.StorageCost),
		SafetyStock:         SafetyStock(TargetServiceLevel, LeadTimeDays, avgDailySales),
		CoverageDays:        coverage,
		ProfitMarginPct:     margin,
		ROIScore:            margin.Mul(rotation).Round(2),
	}

	in := ruleInput{
		Stock:               p.Stock,
		MinStock:            params.MinStock,
		MaxStock:            params.MaxStock,
		HasMaxStock:         params.HasMaxStock,
		DaysWithoutMovement: daysWithoutMovement,
		ProfitMarginPct:     margin,
	}
	for _, rule := range recommendationRules {
		if rule.When(in) {
			analysis.Recommendation = rule.Recommendation
			analysis.AlertLevel = rule.Level
			break
		}
	}
	return analysis
}

// AnalyzeProducts aplica AnalyzeProduct a todo el catálogo conservando el
// orden de entrada.
func AnalyzeProducts(
	products []entity.Product,
	movements []entity.InventoryMovement,
	sales []entity.Sale,
	now time.Time,
) []ProductAnalysis {
	results := make([]ProductAnalysis, 0, len(products))
	for i := range products {
		results = append(results, AnalyzeProduct(products[i], movements, sales, now))
	}
	return results
}
