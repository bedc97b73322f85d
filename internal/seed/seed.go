// Package seed genera el juego de datos inicial del tablero: empleados,
// asistencia, nómina, finanzas, ventas e inventario. El generador es
// determinista para una semilla dada, de modo que dos arranques con la
// misma semilla producen exactamente las mismas colecciones.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	"github.com/DarkSevenX/sistema-RRHH-DDS/pkg/logger"
)

const dateLayout = "2006-01-02"

// Generator produce datos sintéticos reproducibles. now ancla todas las
// fechas relativas ("últimos 30 días", "últimos 6 meses").
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator crea un generador con la semilla dada. Una semilla 0 se
// sustituye por el reloj, para arranques no reproducibles.
func NewGenerator(seed int64, now time.Time) *Generator {
	if seed == 0 {
		seed = now.UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

// Dataset colecciones generadas, listas para persistir. Las referencias
// cruzadas son consistentes: las ventas completadas ya están acumuladas en
// TotalPurchases de sus clientes y las órdenes recibidas en sus proveedores.
type Dataset struct {
	Employees          []entity.Employee
	Attendance         []entity.AttendanceRecord
	PerformanceReviews []entity.PerformanceReview
	Payroll            []entity.PayrollRecord
	Vacations          []entity.VacationRecord
	Transactions       []entity.FinancialTransaction
	Budgets            []entity.Budget
	FinancialMetrics   []entity.FinancialMetrics
	Customers          []entity.Customer
	Sales              []entity.Sale
	SalesMetrics       []entity.SalesMetrics
	Products           []entity.Product
	Movements          []entity.InventoryMovement
	Suppliers          []entity.Supplier
	PurchaseOrders     []entity.PurchaseOrder
}

// Dataset genera el juego completo. El orden importa: la nómina alimenta
// las transacciones, las ventas mutan los clientes y las órdenes recibidas
// mutan los proveedores.
func (g *Generator) Dataset() *Dataset {
	ds := &Dataset{Employees: Employees()}

	ds.Attendance = g.attendance(ds.Employees)
	ds.PerformanceReviews = g.performanceReviews(ds.Employees)
	ds.Payroll = g.payroll(ds.Employees)
	ds.Vacations = g.vacations(ds.Employees)

	ds.Transactions = g.transactions(ds.Payroll)
	ds.Budgets = g.budgets()

	ds.Customers = g.customers(ds.Employees)
	ds.Sales = g.sales(ds.Customers)
	ds.SalesMetrics = salesMetrics(ds.Sales)
	ds.FinancialMetrics = financialMetrics(ds.Transactions)

	ds.Suppliers = Suppliers()
	ds.Products = g.products(ds.Suppliers)
	ds.Movements = g.movements(ds.Products, ds.Employees)
	ds.PurchaseOrders = g.purchaseOrders(ds.Products, ds.Suppliers)

	return ds
}

// monthStart primer día del mes `back` meses atrás (back=0 es el mes
// actual). Normaliza al día 1 antes de restar para evitar el desborde de
// AddDate con meses de distinta longitud.
func (g *Generator) monthStart(back int) time.Time {
	first := time.Date(g.now.Year(), g.now.Month(), 1, 0, 0, 0, 0, g.now.Location())
	return first.AddDate(0, -back, 0)
}

func monthKey(t time.Time) string { return t.Format("2006-01") }

// daysInMonth días del mes de t.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).
		AddDate(0, 1, -1).Day()
}

// EnsureSeeded escribe cada colección del dataset únicamente si su clave
// todavía no existe en el almacén. Colecciones ya presentes se respetan,
// aunque estén vacías: vaciar el almacén es la única forma de re-sembrar.
func EnsureSeeded(ctx context.Context, kv storage.KVStore, ds *Dataset, log *logger.Logger) error {
	writes := []struct {
		key   string
		value any
	}{
		{storage.KeyEmployees, ds.Employees},
		{storage.KeyAttendance, ds.Attendance},
		{storage.KeyPerformance, ds.PerformanceReviews},
		{storage.KeyPayroll, ds.Payroll},
		{storage.KeyVacations, ds.Vacations},
		{storage.KeyTransactions, ds.Transactions},
		{storage.KeyBudgets, ds.Budgets},
		{storage.KeyMetrics, ds.FinancialMetrics},
		{storage.KeyCustomers, ds.Customers},
		{storage.KeySales, ds.Sales},
		{storage.KeySalesMetrics, ds.SalesMetrics},
		{storage.KeyProducts, ds.Products},
		{storage.KeyMovements, ds.Movements},
		{storage.KeySuppliers, ds.Suppliers},
		{storage.KeyPurchaseOrders, ds.PurchaseOrders},
	}

	seeded := 0
	for _, w := range writes {
		var probe json.RawMessage
		found, err := kv.Get(ctx, w.key, &probe)
		if err != nil {
			return fmt.Errorf("verificar %s: %w", w.key, err)
		}
		if found {
			continue
		}
		if err := kv.Set(ctx, w.key, w.value); err != nil {
			return fmt.Errorf("sembrar %s: %w", w.key, err)
		}
		seeded++
	}

	if log != nil {
		log.Info().
			Int("sembradas", seeded).
			Int("existentes", len(writes)-seeded).
			Msg("Siembra de colecciones completada")
	}
	return nil
}
