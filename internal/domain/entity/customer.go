package entity

import "github.com/shopspring/decimal"

// Estados de cliente (sin máquina de transiciones: un cliente puede pasar
// libremente entre activo, inactivo y prospecto).
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusProspect = "prospect"
)

// Customer cliente asignado a un empleado de ventas. TotalPurchases es un
// acumulador: las ventas completadas lo incrementan en cascada.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Company        string          `json:"company"`
	Industry       string          `json:"industry"`
	Status         string          `json:"status"`
	AssignedTo     int             `json:"assignedTo"` // id de empleado de Ventas
	CreatedDate    string          `json:"createdDate"`
	LastContact    string          `json:"lastContact"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
}
