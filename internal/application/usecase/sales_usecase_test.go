package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/memory"
)

// storeConCliente prepara un almacén con un cliente listo para vender.
func storeConCliente(t *testing.T) (*memory.Store, entity.Customer) {
	t.Helper()
	store := memory.New()
	cust := entity.Customer{
		ID:             "customer-1000",
		Name:           "Marta Guzmán",
		Status:         entity.CustomerStatusActive,
		AssignedTo:     1001,
		LastContact:    "2026-01-10",
		TotalPurchases: decimal.NewFromInt(500),
	}
	col := storage.NewCollections(store)
	require.NoError(t, col.SaveCustomers(context.Background(), []entity.Customer{cust}))
	return store, cust
}

func TestCreateSale_CompletadaAcumulaEnCliente(t *testing.T) {
	store, cust := storeConCliente(t)
	uc := usecase.NewSalesUseCase(store)
	ctx := context.Background()

	sale, err := uc.CreateSale(ctx, dto.CreateSaleRequest{
		CustomerID: cust.ID,
		EmployeeID: 1001,
		Date:       "2026-08-20",
		Amount:     decimal.NewFromInt(12000),
		Commission: decimal.NewFromInt(900),
		Status:     "completed",
		Product:    "Licencia Enterprise",
		Quantity:   2,
	})
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.True(t, strings.HasPrefix(sale.ID, "sale-"))

	col := storage.NewCollections(store)
	customers, err := col.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)

	// 500 iniciales + 12000 de la venta, ni un centavo más
	assert.True(t, customers[0].TotalPurchases.Equal(decimal.NewFromInt(12500)),
		"acumulado: %s", customers[0].TotalPurchases)
	assert.Equal(t, "2026-08-20", customers[0].LastContact)

	// Exactamente una transacción espejo, completada
	txns, err := col.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "txn-sale-"+sale.ID, txns[0].ID)
	assert.Equal(t, entity.TransactionIncome, txns[0].Type)
	assert.Equal(t, "Ventas", txns[0].Category)
	assert.Equal(t, entity.TransactionStatusCompleted, txns[0].Status)
	assert.True(t, txns[0].Amount.Equal(sale.Amount))
	assert.Equal(t, 1001, txns[0].RelatedEmployeeID)
}

func TestCreateSale_PendienteNoTocaAlCliente(t *testing.T) {
	store, cust := storeConCliente(t)
	uc := usecase.NewSalesUseCase(store)
	ctx := context.Background()

	sale, err := uc.CreateSale(ctx, dto.CreateSaleRequest{
		CustomerID: cust.ID,
		EmployeeID: 1001,
		Amount:     decimal.NewFromInt(8000),
		Product:    "Soporte Extendido",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)

	col := storage.NewCollections(store)
	customers, err := col.Customers(ctx)
	require.NoError(t, err)
	assert.True(t, customers[0].TotalPurchases.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "2026-01-10", customers[0].LastContact)

	// La transacción espejo existe pero queda pendiente
	txns, err := col.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TransactionStatusPending, txns[0].Status)
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	store, _ := storeConCliente(t)
	uc := usecase.NewSalesUseCase(store)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID: "customer-9999",
		EmployeeID: 1001,
		Amount:     decimal.NewFromInt(100),
		Product:    "Módulo de Reportes",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Nada quedó escrito: la transacción se revirtió completa
	sales, err := storage.NewCollections(store).Sales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestUpdateSale_CompletarEspejaEnTransaccion(t *testing.T) {
	store, cust := storeConCliente(t)
	uc := usecase.NewSalesUseCase(store)
	ctx := context.Background()

	sale, err := uc.CreateSale(ctx, dto.CreateSaleRequest{
		CustomerID: cust.ID,
		EmployeeID: 1001,
		Amount:     decimal.NewFromInt(3000),
		Product:    "Plan Anual Premium",
	})
	require.NoError(t, err)

	nuevoMonto := decimal.NewFromInt(3500)
	status := "completed"
	updated, err := uc.UpdateSale(ctx, sale.ID, dto.UpdateSaleRequest{
		Amount: &nuevoMonto,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, updated.Status)

	txns, err := storage.NewCollections(store).Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TransactionStatusCompleted, txns[0].Status)
	assert.True(t, txns[0].Amount.Equal(nuevoMonto))
}

func TestUpdateSale_TransicionInvalida(t *testing.T) {
	store, cust := storeConCliente(t)
	uc := usecase.NewSalesUseCase(store)
	ctx := context.Background()

	sale, err := uc.CreateSale(ctx, dto.CreateSaleRequest{
		CustomerID: cust.ID,
		EmployeeID: 1001,
		Amount:     decimal.NewFromInt(3000),
		Status:     "cancelled",
		Product:    "Consultoría de Procesos",
	})
	require.NoError(t, err)

	status := "completed"
	_, err = uc.UpdateSale(ctx, sale.ID, dto.UpdateSaleRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateSale_NoEncontrada(t *testing.T) {
	store, _ := storeConCliente(t)
	uc := usecase.NewSalesUseCase(store)

	status := "completed"
	_, err := uc.UpdateSale(context.Background(), "sale-inexistente", dto.UpdateSaleRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCustomer_ArrancaEnCero(t *testing.T) {
	store := memory.New()
	uc := usecase.NewSalesUseCase(store)

	cust, err := uc.CreateCustomer(context.Background(), dto.CreateCustomerRequest{
		Name:       "Omar Cabrera",
		AssignedTo: 1009,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusActive, cust.Status)
	assert.True(t, cust.TotalPurchases.IsZero())
	assert.True(t, strings.HasPrefix(cust.ID, "customer-"))
}
