package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Detencio/SuperSetBI/internal/domain/analytics"
	"github.com/Detencio/SuperSetBI/internal/domain/entity"
)

var analysisNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func movimiento(productID string, daysAgo int) entity.InventoryMovement {
	return entity.InventoryMovement{
		ID:        "m-" + productID,
		ProductID: productID,
		Type:      entity.MovementTypeOut,
		Quantity:  -1,
		Date:      analysisNow.AddDate(0, 0, -daysAgo),
	}
}

// TestAnalyzeProduct_EjemploDeReferencia reproduce el caso de extremo a
// extremo: producto con stock 3, mínimo 10, precio 100 y costo 80, sin ventas
// ni movimientos.
func TestAnalyzeProduct_EjemploDeReferencia(t *testing.T) {
	p := producto("ref", 3, 100)
	p.MinStock = intPtr(10)
	p.Cost = decPtr(80)

	a := analytics.AnalyzeProduct(p, nil, nil, analysisNow)

	assert.Equal(t, "20", a.ProfitMarginPct.String(), "margen = (100-80)/100 × 100")
	assert.True(t, a.RotationRate.IsZero(), "sin ventas la rotación es 0")
	assert.Equal(t, analytics.NeverMovedSentinel, a.DaysWithoutMovement,
		"sin movimientos se usa el centinela 999")
	assert.Equal(t, "999", a.CoverageDays.String(), "sin ventas la cobertura es el centinela 999")
	assert.Equal(t, analytics.RecommendationReplenish, a.Recommendation)
	assert.Equal(t, analytics.AlertLevelCritical, a.AlertLevel, "3 ≤ 5 = 0.5 × 10")
	assert.True(t, a.ROIScore.IsZero())
	// Sin demanda: ROP = stock de seguridad default (5), EOQ y safety stock en 0.
	assert.Equal(t, 5, a.ReorderPoint)
	assert.Equal(t, 0, a.EOQ)
	assert.Equal(t, 0, a.SafetyStock)
}

// TestAnalyzeProduct_PrimeraReglaGana verifica la prioridad fija: un producto
// agotado que además está estancado con margen bajo se clasifica
// REPLENISH/CRITICAL, nunca LIQUIDATE.
func TestAnalyzeProduct_PrimeraReglaGana(t *testing.T) {
	p := producto("multi", 0, 100)
	p.MinStock = intPtr(10)
	p.Cost = decPtr(90) // margen 10% < 20%

	// Sin movimientos → 999 días sin movimiento: también cumpliría la regla
	// de liquidación (999 > 180 y margen < 20).
	a := analytics.AnalyzeProduct(p, nil, nil, analysisNow)

	assert.Equal(t, analytics.RecommendationReplenish, a.Recommendation)
	assert.Equal(t, analytics.AlertLevelCritical, a.AlertLevel)
}

func TestAnalyzeProduct_ReglaReplenishHigh(t *testing.T) {
	// stock 8 con mínimo 10: por encima de la mitad pero bajo el mínimo.
	p := producto("bajo", 8, 100)
	p.MinStock = intPtr(10)

	a := analytics.AnalyzeProduct(p, []entity.InventoryMovement{movimiento("bajo", 1)}, nil, analysisNow)

	assert.Equal(t, analytics.RecommendationReplenish, a.Recommendation)
	assert.Equal(t, analytics.AlertLevelHigh, a.AlertLevel)
}

func TestAnalyzeProduct_ReglaLiquidate(t *testing.T) {
	p := producto("estancado", 50, 100)
	p.MinStock = intPtr(10)
	p.Cost = decPtr(90) // margen 10%

	movs := []entity.InventoryMovement{movimiento("estancado", 200)}
	a := analytics.AnalyzeProduct(p, movs, nil, analysisNow)

	assert.Equal(t, 200, a.DaysWithoutMovement)
	assert.Equal(t, analytics.RecommendationLiquidate, a.Recommendation)
	assert.Equal(t, analytics.AlertLevelMedium, a.AlertLevel)
}

func TestAnalyzeProduct_ReglaReduce(t *testing.T) {
	p := producto("exceso", 130, 100)
	p.MinStock = intPtr(10)
	p.MaxStock = intPtr(100)

	movs := []entity.InventoryMovement{movimiento("exceso", 2)}
	a := analytics.AnalyzeProduct(p, movs, nil, analysisNow)

	assert.Equal(t, analytics.RecommendationReduce, a.Recommendation)
	assert.Equal(t, analytics.AlertLevelMedium, a.AlertLevel)
}

func TestAnalyzeProduct_ReglaMaintain(t *testing.T) {
	p := producto("sano", 50, 100)
	p.MinStock = intPtr(10)
	p.Cost = decPtr(50)

	movs := []entity.InventoryMovement{movimiento("sano", 3)}
	a := analytics.AnalyzeProduct(p, movs, nil, analysisNow)

	assert.Equal(t, analytics.RecommendationMaintain, a.Recommendation)
	assert.Equal(t, analytics.AlertLevelLow, a.AlertLevel)
}

func TestAnalyzeProduct_MetricasConVentas(t *testing.T) {
	// 60 unidades vendidas en la ventana de 30 días, stock 30.
	p := producto("activo", 30, 100)
	p.MinStock = intPtr(10)
	p.Cost = decPtr(50)

	sales := []entity.Sale{
		venta("activo", 25, 2500),
		{ID: "v2", ProductID: "activo", Quantity: 35, TotalAmount: decimal.NewFromInt(3500), Date: analysisNow},
	}
	a := analytics.AnalyzeProduct(p, []entity.InventoryMovement{movimiento("activo", 1)}, sales, analysisNow)

	assert.Equal(t, "2", a.RotationRate.String(), "rotación = 60 vendidas / 30 en stock")
	assert.Equal(t, "15", a.CoverageDays.String(), "cobertura = 30 / (60/30) días")
	// Demanda diaria 2: ROP = ceil(2×7 + 5) = 19
	assert.Equal(t, 19, a.ReorderPoint)
	// Demanda anual 720, ordering 50, storage 2 → EOQ 190
	assert.Equal(t, 190, a.EOQ)
	// 1.65 × sqrt(7 × 2) ≈ 6.17 → 7
	assert.Equal(t, 7, a.SafetyStock)
	// ROI proxy = margen (50) × rotación (2)
	assert.Equal(t, "100", a.ROIScore.String())
}

func TestAnalyzeProduct_IgnoraVentasDeOtrosProductos(t *testing.T) {
	p := producto("propio", 10, 100)
	sales := []entity.Sale{venta("ajeno", 100, 10000)}

	a := analytics.AnalyzeProduct(p, nil, sales, analysisNow)

	assert.True(t, a.RotationRate.IsZero(), "las ventas de otro producto no cuentan")
}

func TestAnalyzeProduct_PrecioCeroNoFalla(t *testing.T) {
	// Precio 0 es dato degenerado: el margen se degrada a 0 sin dividir.
	p := producto("gratis", 50, 0)
	p.MinStock = intPtr(10)

	a := analytics.AnalyzeProduct(p, []entity.InventoryMovement{movimiento("gratis", 1)}, nil, analysisNow)

	assert.True(t, a.ProfitMarginPct.IsZero())
}

func TestAnalyzeProduct_CostoAusenteDaMargenCero(t *testing.T) {
	p := producto("sincosto", 50, 100) // Cost nil → se asume igual al precio

	a := analytics.AnalyzeProduct(p, []entity.InventoryMovement{movimiento("sincosto", 1)}, nil, analysisNow)

	assert.True(t, a.ProfitMarginPct.IsZero(), "costo ausente implica margen 0, no error")
}

func TestAnalyzeProduct_OverrideDeStockSeguridad(t *testing.T) {
	p := producto("override", 50, 100)
	p.SafetyStock = intPtr(12)

	a := analytics.AnalyzeProduct(p, []entity.InventoryMovement{movimiento("override", 1)}, nil, analysisNow)

	// Sin demanda el ROP es exactamente el override del stock de seguridad.
	assert.Equal(t, 12, a.ReorderPoint)
}

func TestAnalyzeProducts_ConservaElOrden(t *testing.T) {
	products := []entity.Product{
		producto("p1", 3, 10),
		producto("p2", 50, 10),
	}

	results := analytics.AnalyzeProducts(products, nil, nil, analysisNow)

	assert.Len(t, results, 2)
	assert.Equal(t, "p1", results[0].Product.ID)
	assert.Equal(t, "p2", results[1].Product.ID)
}
