package dto

import "github.com/shopspring/decimal"

// PurchaseOrderItemRequest línea de una orden de compra.
type PurchaseOrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra. El
// proveedor se referencia por nombre.
type CreatePurchaseOrderRequest struct {
	Supplier         string                     `json:"supplier" validate:"required,min=1,max=120"`
	Date             string                     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ExpectedDelivery string                     `json:"expectedDelivery" validate:"omitempty,datetime=2006-01-02"`
	Status           string                     `json:"status" validate:"omitempty,oneof=pending received cancelled"`
	Items            []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdatePurchaseOrderRequest actualización parcial de una orden. Al pasar a
// received, ResponsibleID identifica al empleado que recibe la mercancía y
// queda como responsable de las entradas de inventario generadas.
type UpdatePurchaseOrderRequest struct {
	ExpectedDelivery *string `json:"expectedDelivery" validate:"omitempty,datetime=2006-01-02"`
	Status           *string `json:"status" validate:"omitempty,oneof=pending received cancelled"`
	ResponsibleID    int     `json:"responsibleId" validate:"omitempty,gt=0"`
}
