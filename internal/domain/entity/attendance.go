package entity

// AttendanceType tipo de marcación de asistencia.
type AttendanceType string

const (
	AttendanceEntrada AttendanceType = "entrada"
	AttendanceSalida  AttendanceType = "salida"
)

// Valid indica si el tipo es uno de los conocidos.
func (t AttendanceType) Valid() bool {
	return t == AttendanceEntrada || t == AttendanceSalida
}

// AttendanceRecord marcación de entrada o salida de un empleado.
// Se espera a lo sumo una entrada y una salida por empleado por fecha.
type AttendanceRecord struct {
	ID         string         `json:"id"`
	EmployeeID int            `json:"employeeId"`
	Date       string         `json:"date"` // YYYY-MM-DD
	Time       string         `json:"time"` // HH:MM
	Type       AttendanceType `json:"type"`
}
