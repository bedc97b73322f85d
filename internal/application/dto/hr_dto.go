package dto

// ClockRequest marcación de entrada o salida de un empleado. Date y Time
// son opcionales; en blanco se toman del reloj del servidor.
type ClockRequest struct {
	EmployeeID int    `json:"employeeId" validate:"required,gt=0"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time       string `json:"time" validate:"omitempty,datetime=15:04"`
}

// CreateVacationRequest solicitud de vacaciones o ausencia.
type CreateVacationRequest struct {
	EmployeeID int    `json:"employeeId" validate:"required,gt=0"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Type       string `json:"type" validate:"required,oneof=vacation sick personal maternity"`
}

// UpdateVacationRequest actualización parcial de una solicitud. El cambio
// de estado se valida contra la máquina de transiciones.
type UpdateVacationRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	ApprovedBy *string `json:"approvedBy" validate:"omitempty,min=1,max=120"`
}
