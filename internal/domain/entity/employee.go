package entity

import "github.com/shopspring/decimal"

// Employee representa un empleado de la empresa. La plantilla es estática
// (ids 1001-1020, sembrada una sola vez) y sus ids se referencian por
// convención desde asistencia, nómina, vacaciones, evaluaciones y ventas.
type Employee struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Position         string          `json:"position"`
	Department       string          `json:"department"`
	HireDate         string          `json:"hireDate"` // YYYY-MM-DD
	Salary           decimal.Decimal `json:"salary"`
	PerformanceScore int             `json:"performanceScore"`
	AttendanceRate   int             `json:"attendanceRate"`
	Status           string          `json:"status"` // active | inactive
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	IDCard           string          `json:"idCard"`
	Address          string          `json:"address"`
	City             string          `json:"city"`
	Age              int             `json:"age"`
	EmergencyContact string          `json:"emergencyContact"`
	EmergencyPhone   string          `json:"emergencyPhone"`
	Education        string          `json:"education"`
	BloodType        string          `json:"bloodType"`
}
