package seed

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
)

var incomeCategories = []string{"Ventas", "Servicios", "Consultoría", "Licencias"}

var expenseCategories = []string{
	"Alquiler", "Servicios Públicos", "Marketing",
	"Suministros", "Software", "Mantenimiento",
}

var departments = []string{
	"Ventas", "TI", "Diseño", "Operaciones",
	"Recursos Humanos", "Finanzas", "Marketing",
}

// transactions histórico financiero de los últimos 6 meses: un gasto de
// nómina por cada registro de nómina, más 15 ingresos y 10 gastos
// operativos aleatorios por mes.
func (g *Generator) transactions(payroll []entity.PayrollRecord) []entity.FinancialTransaction {
	var txns []entity.FinancialTransaction

	for _, rec := range payroll {
		status := entity.TransactionStatusCompleted
		if rec.Status != entity.PayrollStatusPaid {
			status = entity.TransactionStatusPending
		}
		txns = append(txns, entity.FinancialTransaction{
			ID:                "txn-" + rec.ID,
			Date:              rec.PaymentDate,
			Type:              entity.TransactionExpense,
			Category:          "Nómina",
			Description:       fmt.Sprintf("Pago de nómina %s", rec.Month),
			Amount:            rec.NetSalary,
			Department:        "Recursos Humanos",
			RelatedEmployeeID: rec.EmployeeID,
			Status:            status,
		})
	}

	for back := 5; back >= 0; back-- {
		start := g.monthStart(back)
		month := monthKey(start)

		for i := 0; i < 15; i++ {
			cat := incomeCategories[g.rng.Intn(len(incomeCategories))]
			txns = append(txns, entity.FinancialTransaction{
				ID:          fmt.Sprintf("txn-%s-inc-%d", month, i+1),
				Date:        g.dayInMonth(start),
				Type:        entity.TransactionIncome,
				Category:    cat,
				Description: fmt.Sprintf("Ingreso por %s", cat),
				Amount:      decimal.NewFromInt(int64(10000 + g.rng.Intn(50000))),
				Department:  "Ventas",
				Status:      entity.TransactionStatusCompleted,
			})
		}

		for i := 0; i < 10; i++ {
			cat := expenseCategories[g.rng.Intn(len(expenseCategories))]
			txns = append(txns, entity.FinancialTransaction{
				ID:          fmt.Sprintf("txn-%s-exp-%d", month, i+1),
				Date:        g.dayInMonth(start),
				Type:        entity.TransactionExpense,
				Category:    cat,
				Description: fmt.Sprintf("Gasto de %s", cat),
				Amount:      decimal.NewFromInt(int64(1000 + g.rng.Intn(15000))),
				Department:  departments[g.rng.Intn(len(departments))],
				Status:      entity.TransactionStatusCompleted,
			})
		}
	}

	// Más reciente primero, como las transacciones creadas en runtime
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date > txns[j].Date
	})
	return txns
}

// dayInMonth fecha aleatoria dentro del mes de start.
func (g *Generator) dayInMonth(start time.Time) string {
	return start.AddDate(0, 0, g.rng.Intn(daysInMonth(start))).Format(dateLayout)
}

var budgetCategories = []string{
	"Salarios", "Equipamiento", "Software",
	"Capacitación", "Viajes", "Suministros",
}

// budgets un presupuesto por mes, departamento y categoría para los últimos
// 6 meses. El gasto real cae entre el 60% y el 110% del presupuestado, así
// siempre hay partidas sobregiradas que mostrar.
func (g *Generator) budgets() []entity.Budget {
	var budgets []entity.Budget

	for back := 5; back >= 0; back-- {
		month := monthKey(g.monthStart(back))
		for _, dept := range departments {
			for _, cat := range budgetCategories {
				budgeted := decimal.NewFromInt(int64(20000 + g.rng.Intn(50000)))
				ratio := decimal.NewFromFloat(0.6 + g.rng.Float64()*0.5)

				budgets = append(budgets, entity.Budget{
					ID:         fmt.Sprintf("bud-%s-%s-%s", month, dept, cat),
					Department: dept,
					Category:   cat,
					Budgeted:   budgeted,
					Spent:      budgeted.Mul(ratio).Round(2),
					Month:      month,
				})
			}
		}
	}
	return budgets
}

// financialMetrics agrega las transacciones completadas por mes. Es el
// mismo cálculo que expone el tablero en vivo; la copia sembrada sirve de
// instantánea inicial.
func financialMetrics(txns []entity.FinancialTransaction) []entity.FinancialMetrics {
	type bucket struct {
		revenue  decimal.Decimal
		expenses decimal.Decimal
	}
	byMonth := map[string]*bucket{}

	for _, t := range txns {
		if t.Status != entity.TransactionStatusCompleted || len(t.Date) < 7 {
			continue
		}
		month := t.Date[:7]
		b := byMonth[month]
		if b == nil {
			b = &bucket{}
			byMonth[month] = b
		}
		switch t.Type {
		case entity.TransactionIncome:
			b.revenue = b.revenue.Add(t.Amount)
		case entity.TransactionExpense:
			b.expenses = b.expenses.Add(t.Amount)
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	metrics := make([]entity.FinancialMetrics, 0, len(months))
	for _, m := range months {
		b := byMonth[m]
		profit := b.revenue.Sub(b.expenses)
		margin := decimal.Zero
		if !b.revenue.IsZero() {
			margin = profit.Div(b.revenue).Mul(decimal.NewFromInt(100)).Round(2)
		}
		metrics = append(metrics, entity.FinancialMetrics{
			Month:        m,
			Revenue:      b.revenue,
			Expenses:     b.expenses,
			Profit:       profit,
			ProfitMargin: margin,
		})
	}
	return metrics
}
