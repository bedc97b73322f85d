package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=120"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Industry   string `json:"industry"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive prospect"`
	AssignedTo int    `json:"assignedTo" validate:"required,gt=0"`
}

// UpdateCustomerRequest actualización parcial de un cliente.
// TotalPurchases no es editable: lo acumulan las ventas completadas.
type UpdateCustomerRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	Industry    *string `json:"industry"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive prospect"`
	AssignedTo  *int    `json:"assignedTo" validate:"omitempty,gt=0"`
	LastContact *string `json:"lastContact" validate:"omitempty,datetime=2006-01-02"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	CustomerID string          `json:"customerId" validate:"required"`
	EmployeeID int             `json:"employeeId" validate:"required,gt=0"`
	Date       string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Commission decimal.Decimal `json:"commission"`
	Status     string          `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Product    string          `json:"product" validate:"required,min=1,max=200"`
	Quantity   int             `json:"quantity" validate:"omitempty,gt=0"`
}

// UpdateSaleRequest actualización parcial de una venta. El cambio de estado
// se valida contra la máquina de transiciones y se refleja en la
// transacción espejo.
type UpdateSaleRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	Commission *decimal.Decimal `json:"commission"`
	Status     *string          `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Product    *string          `json:"product" validate:"omitempty,min=1,max=200"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gt=0"`
}
