package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/application/reports"
	"github.com/Detencio/SuperSetBI/internal/application/usecase"
	"github.com/Detencio/SuperSetBI/internal/domain/entity"
	"github.com/Detencio/SuperSetBI/internal/infrastructure/pdf"
	apphttp "github.com/Detencio/SuperSetBI/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria de los puertos de lectura
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products []entity.Product
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List(_ context.Context, category string) ([]entity.Product, error) {
	if category == "" {
		return r.products, nil
	}
	var out []entity.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

type memMovementRepo struct {
	movements []entity.InventoryMovement
}

func (r *memMovementRepo) List(_ context.Context) ([]entity.InventoryMovement, error) {
	return r.movements, nil
}

func (r *memMovementRepo) ListByProduct(_ context.Context, productID string) ([]entity.InventoryMovement, error) {
	var out []entity.InventoryMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memSaleRepo struct {
	sales []entity.Sale
}

func (r *memSaleRepo) List(_ context.Context) ([]entity.Sale, error) {
	return r.sales, nil
}

func (r *memSaleRepo) ListByProduct(_ context.Context, productID string) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out, nil
}

type stubLLM struct{}

func (s *stubLLM) SummarizeAlerts(_ context.Context, alerts []dto.AlertDTO, _ string) (*dto.AssistantSummaryDTO, error) {
	return &dto.AssistantSummaryDTO{
		Summary:         "Resumen de prueba",
		PriorityActions: []string{"Reponer el producto crítico"},
		RiskLevel:       "alto",
	}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func intPtr(v int) *int { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// buildTestApp construye la app Fiber completa con datos de catálogo fijos:
// un producto crítico (stock 3, mínimo 10) y uno sano en otra categoría.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	productRepo := &memProductRepo{products: []entity.Product{
		{
			ID:       "p1",
			SKU:      "SKU-001",
			Name:     "Detergente industrial",
			Category: "limpieza",
			Price:    decimal.NewFromInt(100),
			Cost:     decPtr("80"),
			Stock:    3,
			MinStock: intPtr(10),
		},
		{
			ID:       "p2",
			SKU:      "SKU-002",
			Name:     "Agua mineral",
			Category: "bebidas",
			Price:    decimal.NewFromInt(10),
			Stock:    500,
		},
	}}
	movementRepo := &memMovementRepo{movements: []entity.InventoryMovement{
		{ID: "m1", ProductID: "p1", Type: entity.MovementTypeOut, Quantity: -2, Date: time.Now().AddDate(0, 0, -1)},
	}}
	saleRepo := &memSaleRepo{}

	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, movementRepo, saleRepo, nil)
	assistantUC := usecase.NewAssistantUseCase(dashboardUC, &stubLLM{})
	reportUC := reports.NewReportUseCase(dashboardUC, pdf.NewMarotoAlertReportGenerator())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC: dashboardUC,
		AssistantUC: assistantUC,
		ReportUC:    reportUC,
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetKPIs_RetornaSnapshot(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/dashboard/kpis")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap dto.KPISnapshotDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))

	assert.Equal(t, 2, snap.TotalProducts, "el catálogo de prueba tiene 2 productos")
	assert.Equal(t, 1, snap.LowStockCount, "el producto crítico cuenta como stock bajo")
	// 3×100 + 500×10 = 5300
	assert.True(t, snap.TotalStockValue.Equal(decimal.NewFromInt(5300)),
		"valor total de stock esperado 5300, obtenido %s", snap.TotalStockValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// Analítica por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_FiltraPorCategoria(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/analytics/products?category=bebidas")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.ProductAnalyticsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "p2", list[0].ProductID)
}

func TestGetProduct_ProductoCritico(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/analytics/products/p1")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.ProductAnalyticsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "REPLENISH", result.Recommendation,
		"stock 3 con mínimo 10 debe recomendar reposición")
	assert.Equal(t, "CRITICAL", result.AlertLevel)
}

func TestGetProduct_NoExiste_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/analytics/products/desconocido")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND",
		"la respuesta de error debe incluir el código NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestListAlerts_IncluyeStockCritico(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/alerts")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var alerts []dto.AlertDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&alerts))
	require.NotEmpty(t, alerts, "el producto crítico debe generar al menos una alerta")

	assert.Equal(t, "low_stock", alerts[0].Type)
	assert.Equal(t, "critical", alerts[0].Priority)
	assert.Equal(t, "p1", alerts[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistente IA
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarizeAlerts_DelegaAlLLM(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/alerts-summary",
		strings.NewReader(`{"question":"¿qué repongo primero?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.AssistantSummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Resumen de prueba", result.Summary)
	assert.Equal(t, "alto", result.RiskLevel)
}

func TestSummarizeAlerts_SinBody_Acepta(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/alerts-summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la pregunta es opcional; sin body debe responder igual")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertsPDF_DescargaDocumento(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/reports/alerts/pdf")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"),
		"el cuerpo debe ser un documento PDF")
}
