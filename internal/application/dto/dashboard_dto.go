package dto

import "github.com/shopspring/decimal"

// DashboardSummary resumen del mes en curso para la página principal del
// tablero.
type DashboardSummary struct {
	Month            string          `json:"month"`
	Revenue          decimal.Decimal `json:"revenue"`
	Expenses         decimal.Decimal `json:"expenses"`
	Profit           decimal.Decimal `json:"profit"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	NumberOfSales    int             `json:"numberOfSales"`
	ActiveEmployees  int             `json:"activeEmployees"`
	LowStockProducts int             `json:"lowStockProducts"`
	PendingVacations int             `json:"pendingVacations"`
	PendingOrders    int             `json:"pendingOrders"`
}
