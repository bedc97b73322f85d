package entity

import "github.com/shopspring/decimal"

// PurchaseOrderStatus estado de una orden de compra.
type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "pending"
	PurchaseOrderReceived  PurchaseOrderStatus = "received"
	PurchaseOrderCancelled PurchaseOrderStatus = "cancelled"
)

// Valid indica si el estado es uno de los conocidos.
func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case PurchaseOrderPending, PurchaseOrderReceived, PurchaseOrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo valida la transición s -> next.
// pending -> received | cancelled; received y cancelled son terminales.
func (s PurchaseOrderStatus) CanTransitionTo(next PurchaseOrderStatus) bool {
	if s == next {
		return true
	}
	return s == PurchaseOrderPending &&
		(next == PurchaseOrderReceived || next == PurchaseOrderCancelled)
}

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrder orden de compra a un proveedor (referenciado por nombre).
// Al pasar a received genera una entrada de inventario por cada línea y
// acumula el total en el proveedor.
type PurchaseOrder struct {
	ID               string              `json:"id"`
	Supplier         string              `json:"supplier"`
	Date             string              `json:"date"`
	ExpectedDelivery string              `json:"expectedDelivery"`
	Status           PurchaseOrderStatus `json:"status"`
	Total            decimal.Decimal     `json:"total"`
	Items            []PurchaseOrderItem `json:"items"`
}
