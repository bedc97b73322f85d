package entity

import "github.com/shopspring/decimal"

// TransactionType income o expense.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid indica si el tipo es uno de los conocidos.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// TransactionStatus estado de una transacción financiera.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Valid indica si el estado es uno de los conocidos.
func (s TransactionStatus) Valid() bool {
	return s == TransactionStatusPending || s == TransactionStatusCompleted
}

// CanTransitionTo valida la transición s -> next. pending -> completed;
// completed es terminal.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s == next {
		return true
	}
	return s == TransactionStatusPending && next == TransactionStatusCompleted
}

// FinancialTransaction transacción financiera. Puede crearse directamente o
// en cascada desde una venta, una orden de compra o una entrada de
// inventario; en esos casos el id lleva el prefijo txn-sale-, txn-po- o
// txn-inventory- seguido del id origen.
type FinancialTransaction struct {
	ID                string            `json:"id"`
	Date              string            `json:"date"`
	Type              TransactionType   `json:"type"`
	Category          string            `json:"category"`
	Description       string            `json:"description"`
	Amount            decimal.Decimal   `json:"amount"`
	Department        string            `json:"department"`
	RelatedEmployeeID int               `json:"relatedEmployeeId,omitempty"`
	Status            TransactionStatus `json:"status"`
}
