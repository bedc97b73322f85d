package storage

import (
	"context"
	"fmt"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
)

// Collections fachada tipada sobre un KVStore: un getter y un saver por
// colección. Los getters devuelven la colección vacía cuando la clave no
// existe (lectura con valor por defecto, nunca falla por ausencia).
//
// Dentro de una transacción se construye una nueva fachada sobre el
// KVStore de la tx: NewCollections(tx).
type Collections struct {
	kv KVStore
}

// NewCollections construye la fachada sobre el almacén dado.
func NewCollections(kv KVStore) *Collections {
	return &Collections{kv: kv}
}

func getList[T any](ctx context.Context, kv KVStore, key string) ([]T, error) {
	var list []T
	found, err := kv.Get(ctx, key, &list)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	if !found || list == nil {
		return []T{}, nil
	}
	return list, nil
}

func (c *Collections) Employees(ctx context.Context) ([]entity.Employee, error) {
	return getList[entity.Employee](ctx, c.kv, KeyEmployees)
}

func (c *Collections) SaveEmployees(ctx context.Context, list []entity.Employee) error {
	return c.kv.Set(ctx, KeyEmployees, list)
}

func (c *Collections) Attendance(ctx context.Context) ([]entity.AttendanceRecord, error) {
	return getList[entity.AttendanceRecord](ctx, c.kv, KeyAttendance)
}

func (c *Collections) SaveAttendance(ctx context.Context, list []entity.AttendanceRecord) error {
	return c.kv.Set(ctx, KeyAttendance, list)
}

func (c *Collections) PerformanceReviews(ctx context.Context) ([]entity.PerformanceReview, error) {
	return getList[entity.PerformanceReview](ctx, c.kv, KeyPerformance)
}

func (c *Collections) SavePerformanceReviews(ctx context.Context, list []entity.PerformanceReview) error {
	return c.kv.Set(ctx, KeyPerformance, list)
}

func (c *Collections) Payroll(ctx context.Context) ([]entity.PayrollRecord, error) {
	return getList[entity.PayrollRecord](ctx, c.kv, KeyPayroll)
}

func (c *Collections) SavePayroll(ctx context.Context, list []entity.PayrollRecord) error {
	return c.kv.Set(ctx, KeyPayroll, list)
}

func (c *Collections) Vacations(ctx context.Context) ([]entity.VacationRecord, error) {
	return getList[entity.VacationRecord](ctx, c.kv, KeyVacations)
}

func (c *Collections) SaveVacations(ctx context.Context, list []entity.VacationRecord) error {
	return c.kv.Set(ctx, KeyVacations, list)
}

func (c *Collections) Transactions(ctx context.Context) ([]entity.FinancialTransaction, error) {
	return getList[entity.FinancialTransaction](ctx, c.kv, KeyTransactions)
}

func (c *Collections) SaveTransactions(ctx context.Context, list []entity.FinancialTransaction) error {
	return c.kv.Set(ctx, KeyTransactions, list)
}

func (c *Collections) Budgets(ctx context.Context) ([]entity.Budget, error) {
	return getList[entity.Budget](ctx, c.kv, KeyBudgets)
}

func (c *Collections) SaveBudgets(ctx context.Context, list []entity.Budget) error {
	return c.kv.Set(ctx, KeyBudgets, list)
}

func (c *Collections) FinancialMetrics(ctx context.Context) ([]entity.FinancialMetrics, error) {
	return getList[entity.FinancialMetrics](ctx, c.kv, KeyMetrics)
}

func (c *Collections) SaveFinancialMetrics(ctx context.Context, list []entity.FinancialMetrics) error {
	return c.kv.Set(ctx, KeyMetrics, list)
}

func (c *Collections) Customers(ctx context.Context) ([]entity.Customer, error) {
	return getList[entity.Customer](ctx, c.kv, KeyCustomers)
}

func (c *Collections) SaveCustomers(ctx context.Context, list []entity.Customer) error {
	return c.kv.Set(ctx, KeyCustomers, list)
}

func (c *Collections) Sales(ctx context.Context) ([]entity.Sale, error) {
	return getList[entity.Sale](ctx, c.kv, KeySales)
}

func (c *Collections) SaveSales(ctx context.Context, list []entity.Sale) error {
	return c.kv.Set(ctx, KeySales, list)
}

func (c *Collections) SalesMetrics(ctx context.Context) ([]entity.SalesMetrics, error) {
	return getList[entity.SalesMetrics](ctx, c.kv, KeySalesMetrics)
}

func (c *Collections) SaveSalesMetrics(ctx context.Context, list []entity.SalesMetrics) error {
	return c.kv.Set(ctx, KeySalesMetrics, list)
}

func (c *Collections) Products(ctx context.Context) ([]entity.Product, error) {
	return getList[entity.Product](ctx, c.kv, KeyProducts)
}

func (c *Collections) SaveProducts(ctx context.Context, list []entity.Product) error {
	return c.kv.Set(ctx, KeyProducts, list)
}

func (c *Collections) Movements(ctx context.Context) ([]entity.InventoryMovement, error) {
	return getList[entity.InventoryMovement](ctx, c.kv, KeyMovements)
}

func (c *Collections) SaveMovements(ctx context.Context, list []entity.InventoryMovement) error {
	return c.kv.Set(ctx, KeyMovements, list)
}

func (c *Collections) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	return getList[entity.Supplier](ctx, c.kv, KeySuppliers)
}

func (c *Collections) SaveSuppliers(ctx context.Context, list []entity.Supplier) error {
	return c.kv.Set(ctx, KeySuppliers, list)
}

func (c *Collections) PurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return getList[entity.PurchaseOrder](ctx, c.kv, KeyPurchaseOrders)
}

func (c *Collections) SavePurchaseOrders(ctx context.Context, list []entity.PurchaseOrder) error {
	return c.kv.Set(ctx, KeyPurchaseOrders, list)
}
