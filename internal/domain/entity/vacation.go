package entity

// VacationType tipo de solicitud de ausencia.
type VacationType string

const (
	VacationTypeVacation  VacationType = "vacation"
	VacationTypeSick      VacationType = "sick"
	VacationTypePersonal  VacationType = "personal"
	VacationTypeMaternity VacationType = "maternity"
)

// Valid indica si el tipo es uno de los conocidos.
func (t VacationType) Valid() bool {
	switch t {
	case VacationTypeVacation, VacationTypeSick, VacationTypePersonal, VacationTypeMaternity:
		return true
	}
	return false
}

// VacationStatus estado de una solicitud de vacaciones.
type VacationStatus string

const (
	VacationStatusPending  VacationStatus = "pending"
	VacationStatusApproved VacationStatus = "approved"
	VacationStatusRejected VacationStatus = "rejected"
)

// Valid indica si el estado es uno de los conocidos.
func (s VacationStatus) Valid() bool {
	switch s {
	case VacationStatusPending, VacationStatusApproved, VacationStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo valida la transición s -> next.
// pending -> approved | rejected; approved y rejected son terminales.
func (s VacationStatus) CanTransitionTo(next VacationStatus) bool {
	if s == next {
		return true
	}
	return s == VacationStatusPending &&
		(next == VacationStatusApproved || next == VacationStatusRejected)
}

// VacationRecord solicitud de vacaciones/ausencia de un empleado.
type VacationRecord struct {
	ID          string         `json:"id"`
	EmployeeID  int            `json:"employeeId"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Days        int            `json:"days"`
	Type        VacationType   `json:"type"`
	Status      VacationStatus `json:"status"`
	RequestDate string         `json:"requestDate"`
	ApprovedBy  string         `json:"approvedBy,omitempty"`
}
