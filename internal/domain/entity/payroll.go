package entity

import "github.com/shopspring/decimal"

// PayrollStatus estado de un registro de nómina.
type PayrollStatus string

const (
	PayrollStatusPending    PayrollStatus = "pending"
	PayrollStatusProcessing PayrollStatus = "processing"
	PayrollStatusPaid       PayrollStatus = "paid"
)

// Valid indica si el estado es uno de los conocidos.
func (s PayrollStatus) Valid() bool {
	switch s {
	case PayrollStatusPending, PayrollStatusProcessing, PayrollStatusPaid:
		return true
	}
	return false
}

// CanTransitionTo valida la transición s -> next.
// pending -> processing -> paid; paid es terminal.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PayrollStatusPending:
		return next == PayrollStatusProcessing || next == PayrollStatusPaid
	case PayrollStatusProcessing:
		return next == PayrollStatusPaid
	}
	return false
}

// PayrollRecord nómina de un empleado para un mes (uno por empleado por mes).
// NetSalary = BasicSalary + Bonus - Deductions.
type PayrollRecord struct {
	ID          string          `json:"id"`
	EmployeeID  int             `json:"employeeId"`
	Month       string          `json:"month"` // YYYY-MM
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Bonus       decimal.Decimal `json:"bonus"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	PaymentDate string          `json:"paymentDate"`
	Status      PayrollStatus   `json:"status"`
}
