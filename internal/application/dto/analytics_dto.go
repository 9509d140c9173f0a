package dto

import (
	"github.com/shopspring/decimal"
)

// ── Dashboard KPIs ────────────────────────────────────────────────────────────

// ABCDistributionDTO reparto porcentual de productos por banda de valor.
type ABCDistributionDTO struct {
	APercentage decimal.Decimal `json:"a_percentage"`
	BPercentage decimal.Decimal `json:"b_percentage"`
	CPercentage decimal.Decimal `json:"c_percentage"`
}

// KPISnapshotDTO respuesta de GET /api/dashboard/kpis.
// service_level e inventory_accuracy son placeholders fijos del motor; los
// consumidores no deben tratarlos como valores medidos.
type KPISnapshotDTO struct {
	TotalStockValue   decimal.Decimal    `json:"total_stock_value"`
	TotalProducts     int                `json:"total_products"`
	LowStockCount     int                `json:"low_stock_count"`
	OutOfStockCount   int                `json:"out_of_stock_count"`
	ExcessStockCount  int                `json:"excess_stock_count"`
	InventoryTurnover decimal.Decimal    `json:"inventory_turnover"`
	DaysOfInventory   decimal.Decimal    `json:"days_of_inventory"`
	ABCDistribution   ABCDistributionDTO `json:"abc_distribution"`
	LiquidityIndex    int                `json:"liquidity_index"`
	ServiceLevel      decimal.Decimal    `json:"service_level"`
	InventoryAccuracy decimal.Decimal    `json:"inventory_accuracy"`
}

// ── Analítica por producto ────────────────────────────────────────────────────

// ProductAnalyticsRequest parámetros para GET /api/analytics/products.
type ProductAnalyticsRequest struct {
	Category string `query:"category"` // vacío => todo el catálogo
}

// ProductAnalyticsDTO registro analítico extendido de un producto.
type ProductAnalyticsDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"`
	MaxStock  *int            `json:"max_stock,omitempty"`

	RotationRate        decimal.Decimal `json:"rotation_rate"`
	DaysWithoutMovement int             `json:"days_without_movement"` // 999 = sin historial
	ReorderPoint        int             `json:"reorder_point"`
	EOQ                 int             `json:"eoq"`
	SafetyStock         int             `json:"safety_stock"`
	CoverageDays        decimal.Decimal `json:"coverage_days"` // 999 = cobertura infinita
	ProfitMarginPct     decimal.Decimal `json:"profit_margin_pct"`
	ROIScore            decimal.Decimal `json:"roi_score"`
	Recommendation      string          `json:"recommendation"` // REPLENISH | LIQUIDATE | MAINTAIN | REDUCE
	AlertLevel          string          `json:"alert_level"`    // CRITICAL | HIGH | MEDIUM | LOW
}
