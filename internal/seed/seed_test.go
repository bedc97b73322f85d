package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/memory"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/seed"
)

var anchor = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func TestDataset_MismaSemillaMismoDataset(t *testing.T) {
	a := seed.NewGenerator(42, anchor).Dataset()
	b := seed.NewGenerator(42, anchor).Dataset()

	assert.Equal(t, a.Employees, b.Employees)
	assert.Equal(t, a.Attendance, b.Attendance)
	assert.Equal(t, a.Payroll, b.Payroll)
	assert.Equal(t, a.Sales, b.Sales)
	assert.Equal(t, a.PurchaseOrders, b.PurchaseOrders)

	// Semillas distintas divergen
	c := seed.NewGenerator(7, anchor).Dataset()
	assert.NotEqual(t, a.Sales, c.Sales)
}

func TestDataset_PlantillaFija(t *testing.T) {
	ds := seed.NewGenerator(1, anchor).Dataset()

	require.Len(t, ds.Employees, 20)
	assert.Equal(t, 1001, ds.Employees[0].ID)
	assert.Equal(t, 1020, ds.Employees[19].ID)
	require.Len(t, ds.Suppliers, 5)
	require.Len(t, ds.Products, 25)
	require.Len(t, ds.Customers, 50)
}

func TestDataset_AsistenciaSinDuplicados(t *testing.T) {
	ds := seed.NewGenerator(3, anchor).Dataset()

	type clave struct {
		emp  int
		date string
		typ  entity.AttendanceType
	}
	vistos := map[clave]bool{}
	for _, rec := range ds.Attendance {
		k := clave{rec.EmployeeID, rec.Date, rec.Type}
		assert.False(t, vistos[k], "marcación duplicada para %+v", k)
		vistos[k] = true
	}
}

func TestDataset_NominaCuadra(t *testing.T) {
	ds := seed.NewGenerator(5, anchor).Dataset()
	require.NotEmpty(t, ds.Payroll)

	rate := decimal.NewFromFloat(0.15)
	for _, rec := range ds.Payroll {
		esperadoDeduccion := rec.BasicSalary.Mul(rate).Round(2)
		assert.True(t, rec.Deductions.Equal(esperadoDeduccion),
			"deducciones de %s: %s != %s", rec.ID, rec.Deductions, esperadoDeduccion)

		esperadoNeto := rec.BasicSalary.Add(rec.Bonus).Sub(rec.Deductions)
		assert.True(t, rec.NetSalary.Equal(esperadoNeto),
			"neto de %s: %s != %s", rec.ID, rec.NetSalary, esperadoNeto)
	}
}

func TestDataset_AcumuladoDeClientesCuadraConVentas(t *testing.T) {
	ds := seed.NewGenerator(9, anchor).Dataset()

	porCliente := map[string]decimal.Decimal{}
	for _, s := range ds.Sales {
		if s.Status != entity.SaleStatusCompleted {
			continue
		}
		porCliente[s.CustomerID] = porCliente[s.CustomerID].Add(s.Amount)
	}

	for _, c := range ds.Customers {
		esperado := porCliente[c.ID]
		assert.True(t, c.TotalPurchases.Equal(esperado),
			"cliente %s: %s != %s", c.ID, c.TotalPurchases, esperado)
	}
}

func TestDataset_AcumuladoDeProveedoresCuadraConOrdenes(t *testing.T) {
	ds := seed.NewGenerator(11, anchor).Dataset()

	porProveedor := map[string]decimal.Decimal{}
	for _, o := range ds.PurchaseOrders {
		if o.Status != entity.PurchaseOrderReceived {
			continue
		}
		porProveedor[o.Supplier] = porProveedor[o.Supplier].Add(o.Total)
	}

	for _, s := range ds.Suppliers {
		esperado := porProveedor[s.Name]
		assert.True(t, s.TotalPurchases.Equal(esperado),
			"proveedor %s: %s != %s", s.Name, s.TotalPurchases, esperado)
	}
}

func TestEnsureSeeded_NoPisaColeccionesExistentes(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	col := storage.NewCollections(store)

	// Colección preexistente, aunque esté vacía, se respeta
	require.NoError(t, col.SaveEmployees(ctx, []entity.Employee{}))

	ds := seed.NewGenerator(42, anchor).Dataset()
	require.NoError(t, seed.EnsureSeeded(ctx, store, ds, nil))

	employees, err := col.Employees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees, "la colección preexistente no debe re-sembrarse")

	// El resto sí quedó sembrado
	sales, err := col.Sales(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sales)
}

func TestEnsureSeeded_Idempotente(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	ds := seed.NewGenerator(42, anchor).Dataset()
	require.NoError(t, seed.EnsureSeeded(ctx, store, ds, nil))

	col := storage.NewCollections(store)
	antes, err := col.Sales(ctx)
	require.NoError(t, err)

	// Segunda siembra con otro dataset no cambia nada
	otro := seed.NewGenerator(99, anchor).Dataset()
	require.NoError(t, seed.EnsureSeeded(ctx, store, otro, nil))

	despues, err := col.Sales(ctx)
	require.NoError(t, err)
	assert.Equal(t, antes, despues)
}

func TestDataset_HistoricosDeMasRecienteAMasAntiguo(t *testing.T) {
	ds := seed.NewGenerator(42, anchor).Dataset()

	descendente := func(t *testing.T, fechas []string) {
		t.Helper()
		for i := 1; i < len(fechas); i++ {
			require.LessOrEqual(t, fechas[i], fechas[i-1],
				"fecha fuera de orden en la posición %d", i)
		}
	}

	fechas := make([]string, len(ds.Vacations))
	for i, v := range ds.Vacations {
		fechas[i] = v.RequestDate
	}
	descendente(t, fechas)

	fechas = make([]string, len(ds.Transactions))
	for i, txn := range ds.Transactions {
		fechas[i] = txn.Date
	}
	descendente(t, fechas)

	fechas = make([]string, len(ds.Sales))
	for i, s := range ds.Sales {
		fechas[i] = s.Date
	}
	descendente(t, fechas)

	fechas = make([]string, len(ds.Movements))
	for i, m := range ds.Movements {
		fechas[i] = m.Date
	}
	descendente(t, fechas)

	fechas = make([]string, len(ds.PurchaseOrders))
	for i, po := range ds.PurchaseOrders {
		fechas[i] = po.Date
	}
	descendente(t, fechas)
}
