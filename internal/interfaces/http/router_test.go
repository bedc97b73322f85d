package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/analytics"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	apphttp "github.com/DarkSevenX/sistema-RRHH-DDS/internal/interfaces/http"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/memory"
)

// buildTestApp arma la aplicación completa sobre un almacén en memoria con
// un empleado y un cliente de arranque.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.New()
	col := storage.NewCollections(store)
	ctx := context.Background()

	require.NoError(t, col.SaveEmployees(ctx, []entity.Employee{
		{ID: 1001, Name: "Ana María García", Department: "Ventas", Salary: decimal.NewFromInt(85000), Status: "active"},
	}))
	require.NoError(t, col.SaveCustomers(ctx, []entity.Customer{
		{ID: "customer-1000", Name: "Marta Guzmán", Status: entity.CustomerStatusActive, AssignedTo: 1001},
	}))
	require.NoError(t, col.SaveProducts(ctx, []entity.Product{
		{ID: "prod-1", Name: "Monitor 24\"", SKU: "SKU-ELE-0001", Category: "Electrónica",
			UnitPrice: decimal.NewFromInt(300), Stock: 10, MinStock: 3, MaxStock: 50},
	}))

	app := fiber.New()
	inventoryUC := usecase.NewInventoryUseCase(store)
	apphttp.Router(app, apphttp.RouterDeps{
		HRUC:         usecase.NewHRUseCase(store),
		SalesUC:      usecase.NewSalesUseCase(store),
		InventoryUC:  inventoryUC,
		PurchasingUC: usecase.NewPurchasingUseCase(store, inventoryUC),
		FinanceUC:    usecase.NewFinanceUseCase(store),
		DashboardUC:  analytics.NewDashboardUseCase(store, nil),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_ListarEmpleados(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/hr/employees", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var employees []entity.Employee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "Ana María García", employees[0].Name)
}

func TestRouter_CrearVentaCompletada(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]any{
		"customerId": "customer-1000",
		"employeeId": 1001,
		"amount":     15000,
		"status":     "completed",
		"product":    "Licencia Enterprise",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var sale entity.Sale
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sale))
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)

	// La cascada llegó al cliente
	customers, err := storage.NewCollections(store).Customers(context.Background())
	require.NoError(t, err)
	assert.True(t, customers[0].TotalPurchases.Equal(decimal.NewFromInt(15000)))
}

func TestRouter_VentaAClienteInexistenteDa404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]any{
		"customerId": "customer-9999",
		"employeeId": 1001,
		"amount":     100,
		"product":    "Soporte Extendido",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CuerpoInvalidoDa400(t *testing.T) {
	app, store := buildTestApp(t)

	// Sin product ni customerId: falla la validación
	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]any{"amount": 10})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body["code"])

	// Nada llegó al dominio: ni venta ni transacción espejo
	col := storage.NewCollections(store)
	sales, err := col.Sales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
	txns, err := col.Transactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestRouter_MarcacionDuplicadaDa409(t *testing.T) {
	app, _ := buildTestApp(t)

	body := map[string]any{"employeeId": 1001, "date": "2026-08-20", "time": "08:00"}
	resp := doJSON(t, app, http.MethodPost, "/api/hr/attendance/clock-in", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/hr/attendance/clock-in", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_AjusteACeroEsValido(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", map[string]any{
		"productId":   "prod-1",
		"type":        "ajuste",
		"quantity":    0,
		"reason":      "Conteo físico",
		"responsible": 1001,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	products, err := storage.NewCollections(store).Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, products[0].Stock)
}

func TestRouter_ResumenDelTablero(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Contains(t, summary, "revenue")
	assert.Contains(t, summary, "activeEmployees")
}
