package entity

import "github.com/shopspring/decimal"

// FinancialMetrics agregados financieros de un mes, derivados de las
// transacciones completadas.
type FinancialMetrics struct {
	Month        string          `json:"month"` // YYYY-MM
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profitMargin"` // % sobre revenue
}

// SalesMetrics agregados de ventas completadas de un mes.
type SalesMetrics struct {
	Month            string          `json:"month"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalCommissions decimal.Decimal `json:"totalCommissions"`
	AverageTicket    decimal.Decimal `json:"averageTicket"`
	NumberOfSales    int             `json:"numberOfSales"`
}
