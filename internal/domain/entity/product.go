package entity

import "github.com/shopspring/decimal"

// Product producto o SKU del inventario. Stock se muta únicamente vía
// movimientos de inventario; MinStock/MaxStock delimitan el rango deseado.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"` // SKU-<CAT>-<NNNN>
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Stock           int             `json:"stock"`
	MinStock        int             `json:"minStock"`
	MaxStock        int             `json:"maxStock"`
	Supplier        string          `json:"supplier"` // referencia por nombre
	LastRestockDate string          `json:"lastRestockDate"`
}
