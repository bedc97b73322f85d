package usecase_test

import (
	"context"
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

// storeParaCompras prepara productos y un proveedor para recibir órdenes.
func storeParaCompras(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	col := storage.NewCollections(store)
	ctx := context.Background()

	require.NoError(t, col.SaveProducts(ctx, []entity.Product{
		{ID: "prod-1", Name: "Resma de Papel", UnitPrice: decimal.NewFromInt(300), Stock: 10},
		{ID: "prod-2", Name: "Grapadora Industrial", UnitPrice: decimal.NewFromInt(900), Stock: 3},
	}))
	require.NoError(t, col.SaveSuppliers(ctx, []entity.Supplier{
		{ID: "sup-1", Name: "Papelería Central", TotalPurchases: decimal.NewFromInt(1000), Status: "active"},
	}))
	return store
}

func nuevaOrden(t *testing.T, store *memory.Store) *entity.PurchaseOrder {
	t.Helper()
	inventoryUC := usecase.NewInventoryUseCase(store)
	uc := usecase.NewPurchasingUseCase(store, inventoryUC)

	order, err := uc.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		Supplier: "Papelería Central",
		Date:     "2026-08-01",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: "prod-1", Quantity: 10, UnitPrice: decimal.NewFromInt(300)},
			{ProductID: "prod-2", Quantity: 2, UnitPrice: decimal.NewFromInt(900)},
		},
	})
	require.NoError(t, err)
	return order
}

func TestCreatePurchaseOrder_TotalYEspejo(t *testing.T) {
	store := storeParaCompras(t)
	order := nuevaOrden(t, store)

	assert.Equal(t, entity.PurchaseOrderPending, order.Status)
	// 10*300 + 2*900 = 4800
	assert.True(t, order.Total.Equal(decimal.NewFromInt(4800)), "total: %s", order.Total)

	txns, err := storage.NewCollections(store).Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "txn-po-"+order.ID, txns[0].ID)
	assert.Equal(t, entity.TransactionExpense, txns[0].Type)
	assert.Equal(t, "Compras", txns[0].Category)
	// Orden pendiente, gasto pendiente
	assert.Equal(t, entity.TransactionStatusPending, txns[0].Status)
}

func TestUpdatePurchaseOrder_RecibirCascadaCompleta(t *testing.T) {
	store := storeParaCompras(t)
	order := nuevaOrden(t, store)

	inventoryUC := usecase.NewInventoryUseCase(store)
	uc := usecase.NewPurchasingUseCase(store, inventoryUC)
	ctx := context.Background()

	status := "received"
	updated, err := uc.UpdatePurchaseOrder(ctx, order.ID, dto.UpdatePurchaseOrderRequest{
		Status:        &status,
		ResponsibleID: 1011,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderReceived, updated.Status)

	col := storage.NewCollections(store)

	// Una entrada por línea, con el responsable que recibió
	movements, err := col.Movements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	for _, mov := range movements {
		assert.Equal(t, entity.MovementEntrada, mov.Type)
		assert.Equal(t, 1011, mov.Responsible)
		require.NotNil(t, mov.Cost)
	}

	// Stock actualizado: prod-1 10+10, prod-2 3+2
	products, err := col.Products(ctx)
	require.NoError(t, err)
	byID := map[string]entity.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	assert.Equal(t, 20, byID["prod-1"].Stock)
	assert.Equal(t, 5, byID["prod-2"].Stock)

	// Proveedor acumula el total de la orden sobre lo que ya tenía
	suppliers, err := col.Suppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.True(t, suppliers[0].TotalPurchases.Equal(decimal.NewFromInt(5800)),
		"acumulado: %s", suppliers[0].TotalPurchases)

	// La transacción espejo queda completada y sigue siendo la única:
	// las entradas de la recepción no duplican el gasto
	txns, err := col.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TransactionStatusCompleted, txns[0].Status)
}

func TestUpdatePurchaseOrder_RecibirSinResponsable(t *testing.T) {
	store := storeParaCompras(t)
	order := nuevaOrden(t, store)

	uc := usecase.NewPurchasingUseCase(store, usecase.NewInventoryUseCase(store))

	status := "received"
	_, err := uc.UpdatePurchaseOrder(context.Background(), order.ID, dto.UpdatePurchaseOrderRequest{
		Status: &status,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// La orden sigue pendiente: la transacción se revirtió
	orders, err := storage.NewCollections(store).PurchaseOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.PurchaseOrderPending, orders[0].Status)
}

func TestUpdatePurchaseOrder_TransicionInvalida(t *testing.T) {
	store := storeParaCompras(t)
	order := nuevaOrden(t, store)

	uc := usecase.NewPurchasingUseCase(store, usecase.NewInventoryUseCase(store))
	ctx := context.Background()

	status := "received"
	_, err := uc.UpdatePurchaseOrder(ctx, order.ID, dto.UpdatePurchaseOrderRequest{
		Status:        &status,
		ResponsibleID: 1011,
	})
	require.NoError(t, err)

	// received es terminal: no hay vuelta a pending
	regreso := "pending"
	_, err = uc.UpdatePurchaseOrder(ctx, order.ID, dto.UpdatePurchaseOrderRequest{Status: &regreso})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdatePurchaseOrder_ProveedorDesconocidoSeOmite(t *testing.T) {
	store := storeParaCompras(t)
	inventoryUC := usecase.NewInventoryUseCase(store)
	uc := usecase.NewPurchasingUseCase(store, inventoryUC)
	ctx := context.Background()

	order, err := uc.CreatePurchaseOrder(ctx, dto.CreatePurchaseOrderRequest{
		Supplier: "Proveedor Fantasma",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(300)},
		},
	})
	require.NoError(t, err)

	status := "received"
	_, err = uc.UpdatePurchaseOrder(ctx, order.ID, dto.UpdatePurchaseOrderRequest{
		Status:        &status,
		ResponsibleID: 1011,
	})
	require.NoError(t, err, "un proveedor no registrado no debe frenar la recepción")

	// El proveedor existente no se vio afectado
	suppliers, err := storage.NewCollections(store).Suppliers(ctx)
	require.NoError(t, err)
	assert.True(t, suppliers[0].TotalPurchases.Equal(decimal.NewFromInt(1000)))
}
