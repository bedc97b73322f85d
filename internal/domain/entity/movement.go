package entity

import "github.com/shopspring/decimal"

// MovementType tipo de movimiento de inventario.
type MovementType string

const (
	MovementEntrada MovementType = "entrada" // delta positivo sobre el stock
	MovementSalida  MovementType = "salida"  // delta negativo, recortado en cero
	MovementAjuste  MovementType = "ajuste"  // fija el stock absoluto
)

// Valid indica si el tipo es uno de los conocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementEntrada, MovementSalida, MovementAjuste:
		return true
	}
	return false
}

// InventoryMovement movimiento de inventario sobre un producto. Una entrada
// con costo genera una FinancialTransaction de gasto txn-inventory-<id>.
type InventoryMovement struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"productId"`
	Type        MovementType     `json:"type"`
	Quantity    int              `json:"quantity"`
	Date        string           `json:"date"`
	Reason      string           `json:"reason"`
	Responsible int              `json:"responsible"` // id de empleado
	Cost        *decimal.Decimal `json:"cost,omitempty"`
}
