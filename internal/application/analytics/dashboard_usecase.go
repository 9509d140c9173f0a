// Package analytics contiene los casos de uso del Dashboard de Inventario:
// KPIs de portafolio, analítica por producto y panel de alertas. Carga las
// colecciones desde los repositorios y delega todo el cálculo al motor puro
// de internal/domain/analytics.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/domain"
	"github.com/Detencio/SuperSetBI/internal/domain/analytics"
	"github.com/Detencio/SuperSetBI/internal/domain/entity"
	"github.com/Detencio/SuperSetBI/internal/domain/repository"
)

// KPICache puerto opcional de caché para el snapshot del dashboard.
// La implementación Redis vive en internal/infrastructure/cache; el caso de
// uso funciona igual con cache nil (cada petición recalcula).
type KPICache interface {
	GetSnapshot(ctx context.Context) (*dto.KPISnapshotDTO, bool, error)
	SetSnapshot(ctx context.Context, snap *dto.KPISnapshotDTO) error
}

// DashboardUseCase orquesta la analítica de inventario para la API.
//
// Fuente de datos: repositorios read-only de productos, movimientos y ventas.
// El caso de uso garantiza la consistencia del snapshot cargando las tres
// colecciones para una misma invocación y entregándolas juntas al motor.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
	saleRepo     repository.SaleRepository
	cache        KPICache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	saleRepo repository.SaleRepository,
	cache KPICache,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		cache:        cache,
	}
}

// GetKPIs calcula el snapshot de KPIs del portafolio completo.
// Si hay caché y tiene un snapshot vigente, se devuelve sin recalcular.
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) (*dto.KPISnapshotDTO, error) {
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetSnapshot(ctx); err == nil && ok {
			return cached, nil
		}
	}

	products, movements, sales, err := uc.loadCollections(ctx, "")
	if err != nil {
		return nil, err
	}

	snap := analytics.ComputeKPISnapshot(products, movements, sales)
	result := toKPISnapshotDTO(snap)

	if uc.cache != nil {
		// Best-effort: un fallo de caché no invalida el cálculo.
		_ = uc.cache.SetSnapshot(ctx, result)
	}
	return result, nil
}

// GetProductAnalytics devuelve el registro analítico extendido de cada
// producto del catálogo. category vacío => sin filtro de segmentación.
func (uc *DashboardUseCase) GetProductAnalytics(
	ctx context.Context,
	category string,
) ([]dto.ProductAnalyticsDTO, error) {
	products, movements, sales, err := uc.loadCollections(ctx, category)
	if err != nil {
		return nil, err
	}

	results := analytics.AnalyzeProducts(products, movements, sales, time.Now())
	out := make([]dto.ProductAnalyticsDTO, 0, len(results))
	for i := range results {
		out = append(out, toProductAnalyticsDTO(&results[i]))
	}
	return out, nil
}

// GetProductAnalyticsByID devuelve el registro analítico de un solo producto.
func (uc *DashboardUseCase) GetProductAnalyticsByID(
	ctx context.Context,
	productID string,
) (*dto.ProductAnalyticsDTO, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("analítica: producto %s: %w", productID, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movements, err := uc.movementRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("analítica: movimientos de %s: %w", productID, err)
	}
	sales, err := uc.saleRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("analítica: ventas de %s: %w", productID, err)
	}

	analysis := analytics.AnalyzeProduct(*product, movements, sales, time.Now())
	result := toProductAnalyticsDTO(&analysis)
	return &result, nil
}

// GetAlerts genera el panel de alertas vigente. El orden de salida es el orden
// del catálogo; el panel reordena por severidad si lo necesita.
func (uc *DashboardUseCase) GetAlerts(ctx context.Context) ([]dto.AlertDTO, error) {
	products, err := uc.productRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("alertas: catálogo: %w", err)
	}

	alerts := analytics.GenerateAlerts(products, time.Now())
	out := make([]dto.AlertDTO, 0, len(alerts))
	for i := range alerts {
		out = append(out, toAlertDTO(&alerts[i]))
	}
	return out, nil
}

// loadCollections carga productos, movimientos y ventas en paralelo
// (tres consultas independientes).
func (uc *DashboardUseCase) loadCollections(
	ctx context.Context,
	category string,
) ([]entity.Product, []entity.InventoryMovement, []entity.Sale, error) {
	type productsResult struct {
		rows []entity.Product
		err  error
	}
	type movementsResult struct {
		rows []entity.InventoryMovement
		err  error
	}
	type salesResult struct {
		rows []entity.Sale
		err  error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		rows, err := uc.productRepo.List(ctx, category)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.movementRepo.List(ctx)
		movementsCh <- movementsResult{rows, err}
	}()
	go func() {
		rows, err := uc.saleRepo.List(ctx)
		salesCh <- salesResult{rows, err}
	}()

	products := <-productsCh
	movements := <-movementsCh
	sales := <-salesCh

	if products.err != nil {
		return nil, nil, nil, fmt.Errorf("dashboard: catálogo: %w", products.err)
	}
	if movements.err != nil {
		return nil, nil, nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}
	if sales.err != nil {
		return nil, nil, nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	return products.rows, movements.rows, sales.rows, nil
}

// ── Mapeo a DTOs ──────────────────────────────────────────────────────────────

func toKPISnapshotDTO(snap analytics.KPISnapshot) *dto.KPISnapshotDTO {
	return &dto.KPISnapshotDTO{
		TotalStockValue:   snap.TotalStockValue,
		TotalProducts:     snap.TotalProducts,
		LowStockCount:     snap.LowStockCount,
		OutOfStockCount:   snap.OutOfStockCount,
		ExcessStockCount:  snap.ExcessStockCount,
		InventoryTurnover: snap.InventoryTurnover,
		DaysOfInventory:   snap.DaysOfInventory,
		ABCDistribution: dto.ABCDistributionDTO{
			APercentage: snap.ABCDistribution.APercentage,
			BPercentage: snap.ABCDistribution.BPercentage,
			CPercentage: snap.ABCDistribution.CPercentage,
		},
		LiquidityIndex:    snap.LiquidityIndex,
		ServiceLevel:      snap.ServiceLevel,
		InventoryAccuracy: snap.InventoryAccuracy,
	}
}

func toProductAnalyticsDTO(a *analytics.ProductAnalysis) dto.ProductAnalyticsDTO {
	p := a.Product
	return dto.ProductAnalyticsDTO{
		ProductID: p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Cost:      p.EffectiveCost(),
		Stock:     p.Stock,
		MinStock:  p.EffectiveMinStock(),
		MaxStock:  p.MaxStock,

		RotationRate:        a.RotationRate,
		DaysWithoutMovement: a.DaysWithoutMovement,
		ReorderPoint:        a.ReorderPoint,
		EOQ:                 a.EOQ,
		SafetyStock:         a.SafetyStock,
		CoverageDays:        a.CoverageDays,
		ProfitMarginPct:     a.ProfitMarginPct,
		ROIScore:            a.ROIScore,
		Recommendation:      string(a.Recommendation),
		AlertLevel:          string(a.AlertLevel),
	}
}

func toAlertDTO(a *analytics.Alert) dto.AlertDTO {
	return dto.AlertDTO{
		ID:           a.ID,
		ProductID:    a.ProductID,
		ProductName:  a.ProductName,
		Type:         string(a.Type),
		Priority:     string(a.Priority),
		Message:      a.Message,
		Threshold:    a.Threshold,
		CurrentValue: a.CurrentValue,
		CreatedAt:    a.CreatedAt,
	}
}
