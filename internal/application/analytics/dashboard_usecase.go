// Package analytics calcula las series y el resumen del tablero a partir
// de las colecciones persistidas. Nada se guarda: las métricas sembradas
// son solo la instantánea inicial y aquí siempre se recalculan en vivo.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase series mensuales y resumen del mes en curso.
type DashboardUseCase struct {
	store storage.KVStore
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now permite fijar el reloj
// en pruebas; con nil usa time.Now.
func NewDashboardUseCase(store storage.KVStore, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{store: store, now: now}
}

// FinancialSeries serie mensual de ingresos, gastos y utilidad derivada de
// las transacciones completadas, ordenada por mes ascendente.
func (uc *DashboardUseCase) FinancialSeries(ctx context.Context) ([]entity.FinancialMetrics, error) {
	txns, err := storage.NewCollections(uc.store).Transactions(ctx)
	if err != nil {
		return nil, err
	}
	return FinancialSeriesFrom(txns), nil
}

// SalesSeries serie mensual de ventas completadas, ordenada por mes
// ascendente.
func (uc *DashboardUseCase) SalesSeries(ctx context.Context) ([]entity.SalesMetrics, error) {
	sales, err := storage.NewCollections(uc.store).Sales(ctx)
	if err != nil {
		return nil, err
	}
	return SalesSeriesFrom(sales), nil
}

// GetSummary arma el resumen del mes en curso. Las colecciones se leen en
// paralelo: son consultas independientes sobre el mismo almacén.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	col := storage.NewCollections(uc.store)

	type txnResult struct {
		rows []entity.FinancialTransaction
		err  error
	}
	type saleResult struct {
		rows []entity.Sale
		err  error
	}
	type restResult struct {
		employees []entity.Employee
		products  []entity.Product
		vacations []entity.VacationRecord
		orders    []entity.PurchaseOrder
		err       error
	}

	txnChan := make(chan txnResult, 1)
	saleChan := make(chan saleResult, 1)
	restChan := make(chan restResult, 1)

	go func() {
		rows, err := col.Transactions(ctx)
		txnChan <- txnResult{rows, err}
	}()
	go func() {
		rows, err := col.Sales(ctx)
		saleChan <- saleResult{rows, err}
	}()
	go func() {
		var res restResult
		if res.employees, res.err = col.Employees(ctx); res.err != nil {
			restChan <- res
			return
		}
		if res.products, res.err = col.Products(ctx); res.err != nil {
			restChan <- res
			return
		}
		if res.vacations, res.err = col.Vacations(ctx); res.err != nil {
			restChan <- res
			return
		}
		res.orders, res.err = col.PurchaseOrders(ctx)
		restChan <- res
	}()

	txnRes := <-txnChan
	saleRes := <-saleChan
	restRes := <-restChan

	if txnRes.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones: %w", txnRes.err)
	}
	if saleRes.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", saleRes.err)
	}
	if restRes.err != nil {
		return nil, fmt.Errorf("dashboard: colecciones: %w", restRes.err)
	}

	month := uc.now().Format("2006-01")
	summary := &dto.DashboardSummary{Month: month}

	for _, t := range txnRes.rows {
		if t.Status != entity.TransactionStatusCompleted || !strHasMonth(t.Date, month) {
			continue
		}
		switch t.Type {
		case entity.TransactionIncome:
			summary.Revenue = summary.Revenue.Add(t.Amount)
		case entity.TransactionExpense:
			summary.Expenses = summary.Expenses.Add(t.Amount)
		}
	}
	summary.Profit = summary.Revenue.Sub(summary.Expenses)

	for _, s := range saleRes.rows {
		if s.Status != entity.SaleStatusCompleted || !strHasMonth(s.Date, month) {
			continue
		}
		summary.TotalSales = summary.TotalSales.Add(s.Amount)
		summary.NumberOfSales++
	}

	for _, e := range restRes.employees {
		if e.Status == "active" {
			summary.ActiveEmployees++
		}
	}
	for _, p := range restRes.products {
		if p.Stock <= p.MinStock {
			summary.LowStockProducts++
		}
	}
	for _, v := range restRes.vacations {
		if v.Status == entity.VacationStatusPending {
			summary.PendingVacations++
		}
	}
	for _, o := range restRes.orders {
		if o.Status == entity.PurchaseOrderPending {
			summary.PendingOrders++
		}
	}

	return summary, nil
}

func strHasMonth(date, month string) bool {
	return len(date) >= 7 && date[:7] == month
}

// FinancialSeriesFrom agrega transacciones completadas por mes.
func FinancialSeriesFrom(txns []entity.FinancialTransaction) []entity.FinancialMetrics {
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

	metrics := make([]entity.FinancialMetrics, 0, len(byMonth))
	for _, m := range sortedMonths(byMonth) {
		b := byMonth[m]
		profit := b.revenue.Sub(b.expenses)
		margin := decimal.Zero
		if !b.revenue.IsZero() {
			margin = profit.Div(b.revenue).Mul(hundred).Round(2)
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

// SalesSeriesFrom agrega ventas completadas por mes.
func SalesSeriesFrom(sales []entity.Sale) []entity.SalesMetrics {
	type bucket struct {
		total       decimal.Decimal
		commissions decimal.Decimal
		count       int
	}
	byMonth := map[string]*bucket{}

	for _, s := range sales {
		if s.Status != entity.SaleStatusCompleted || len(s.Date) < 7 {
			continue
		}
		month := s.Date[:7]
		b := byMonth[month]
		if b == nil {
			b = &bucket{}
			byMonth[month] = b
		}
		b.total = b.total.Add(s.Amount)
		b.commissions = b.commissions.Add(s.Commission)
		b.count++
	}

	metrics := make([]entity.SalesMetrics, 0, len(byMonth))
	for _, m := range sortedMonths(byMonth) {
		b := byMonth[m]
		avg := decimal.Zero
		if b.count > 0 {
			avg = b.total.Div(decimal.NewFromInt(int64(b.count))).Round(2)
		}
		metrics = append(metrics, entity.SalesMetrics{
			Month:            m,
			TotalSales:       b.total,
			TotalCommissions: b.commissions,
			AverageTicket:    avg,
			NumberOfSales:    b.count,
		})
	}
	return metrics
}

func sortedMonths[V any](byMonth map[string]V) []string {
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}
