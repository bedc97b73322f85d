package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Con SKU en blanco se
// genera uno a partir de la categoría y un consecutivo.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"omitempty,min=1,max=40"`
	Category    string          `json:"category" validate:"required,min=1,max=60"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"required"`
	Stock       int             `json:"stock" validate:"omitempty,gte=0"`
	MinStock    int             `json:"minStock" validate:"omitempty,gte=0"`
	MaxStock    int             `json:"maxStock" validate:"omitempty,gte=0"`
	Supplier    string          `json:"supplier"`
}

// UpdateProductRequest actualización parcial de un producto. Stock no es
// editable directamente: se mueve vía movimientos de inventario.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=60"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	MinStock    *int             `json:"minStock" validate:"omitempty,gte=0"`
	MaxStock    *int             `json:"maxStock" validate:"omitempty,gte=0"`
	Supplier    *string          `json:"supplier"`
}

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=120"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Category      string `json:"category"`
	PaymentTerms  string `json:"paymentTerms"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
// TotalPurchases no es editable: lo acumulan las órdenes recibidas.
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=120"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Category      *string `json:"category"`
	PaymentTerms  *string `json:"paymentTerms"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CreateMovementRequest entrada para registrar un movimiento de inventario.
// Cost solo aplica a entradas y dispara la transacción de gasto espejo.
type CreateMovementRequest struct {
	ProductID   string           `json:"productId" validate:"required"`
	Type        string           `json:"type" validate:"required,oneof=entrada salida ajuste"`
	// Sin required: un ajuste a cero es cantidad 0 y es válido
	Quantity    int              `json:"quantity" validate:"gte=0"`
	Date        string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Reason      string           `json:"reason" validate:"required,min=1,max=200"`
	Responsible int              `json:"responsible" validate:"required,gt=0"`
	Cost        *decimal.Decimal `json:"cost"`
}
