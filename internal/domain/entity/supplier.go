package entity

import "github.com/shopspring/decimal"

// Supplier proveedor. Las órdenes de compra lo referencian por nombre (no
// por id); TotalPurchases acumula los totales de órdenes recibidas.
type Supplier struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ContactPerson  string          `json:"contactPerson"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Category       string          `json:"category"`
	PaymentTerms   string          `json:"paymentTerms"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	Status         string          `json:"status"` // active | inactive
}
