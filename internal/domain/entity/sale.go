package entity

import "github.com/shopspring/decimal"

// SaleStatus estado de una venta.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Valid indica si el estado es uno de los conocidos.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo valida la transición s -> next.
// pending -> completed | cancelled; completed y cancelled son terminales
// (una venta completada no puede volver a pending).
func (s SaleStatus) CanTransitionTo(next SaleStatus) bool {
	if s == next {
		return true
	}
	return s == SaleStatusPending &&
		(next == SaleStatusCompleted || next == SaleStatusCancelled)
}

// Sale venta a un cliente. Al completarse incrementa TotalPurchases del
// cliente y siempre genera una FinancialTransaction espejo txn-sale-<id>.
type Sale struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	EmployeeID int             `json:"employeeId"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Status     SaleStatus      `json:"status"`
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
}
