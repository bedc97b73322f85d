package entity

import "github.com/shopspring/decimal"

// Budget presupuesto mensual de un departamento por categoría de gasto.
type Budget struct {
	ID         string          `json:"id"`
	Department string          `json:"department"`
	Category   string          `json:"category"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Month      string          `json:"month"` // YYYY-MM
}
