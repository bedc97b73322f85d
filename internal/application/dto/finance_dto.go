package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest entrada para registrar una transacción
// financiera manual (las de cascada se generan desde ventas, inventario y
// compras).
type CreateTransactionRequest struct {
	Date              string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type              string          `json:"type" validate:"required,oneof=income expense"`
	Category          string          `json:"category" validate:"required,min=1,max=60"`
	Description       string          `json:"description" validate:"required,min=1,max=300"`
	Amount            decimal.Decimal `json:"amount" validate:"required"`
	Department        string          `json:"department"`
	RelatedEmployeeID int             `json:"relatedEmployeeId" validate:"omitempty,gt=0"`
	Status            string          `json:"status" validate:"omitempty,oneof=pending completed"`
}

// UpdateTransactionRequest actualización parcial de una transacción.
type UpdateTransactionRequest struct {
	Category    *string          `json:"category" validate:"omitempty,min=1,max=60"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=300"`
	Amount      *decimal.Decimal `json:"amount"`
	Department  *string          `json:"department"`
	Status      *string          `json:"status" validate:"omitempty,oneof=pending completed"`
}
