package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
)

// HRHandler maneja las peticiones HTTP de recursos humanos.
type HRHandler struct {
	uc *usecase.HRUseCase
}

// NewHRHandler construye el handler.
func NewHRHandler(uc *usecase.HRUseCase) *HRHandler {
	return &HRHandler{uc: uc}
}

// ListEmployees godoc
// @Summary      Listar empleados
// @Tags         hr
// @Produce      json
// @Success      200  {array}  entity.Employee
// @Router       /api/hr/employees [get]
func (h *HRHandler) ListEmployees(c *fiber.Ctx) error {
	out, err := h.uc.Employees(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetEmployee godoc
// @Summary      Obtener empleado por ID
// @Tags         hr
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  entity.Employee
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hr/employees/{id} [get]
func (h *HRHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetEmployee(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAttendance godoc
// @Summary      Listar marcaciones de asistencia
// @Tags         hr
// @Produce      json
// @Success      200  {array}  entity.AttendanceRecord
// @Router       /api/hr/attendance [get]
func (h *HRHandler) ListAttendance(c *fiber.Ctx) error {
	out, err := h.uc.Attendance(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClockIn godoc
// @Summary      Marcar entrada
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClockRequest  true  "Marcación"
// @Success      201   {object}  entity.AttendanceRecord
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/hr/attendance/clock-in [post]
func (h *HRHandler) ClockIn(c *fiber.Ctx) error {
	var in dto.ClockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.ClockIn(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ClockOut godoc
// @Summary      Marcar salida
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClockRequest  true  "Marcación"
// @Success      201   {object}  entity.AttendanceRecord
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/hr/attendance/clock-out [post]
func (h *HRHandler) ClockOut(c *fiber.Ctx) error {
	var in dto.ClockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.ClockOut(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayroll godoc
// @Summary      Listar nómina
// @Tags         hr
// @Produce      json
// @Success      200  {array}  entity.PayrollRecord
// @Router       /api/hr/payroll [get]
func (h *HRHandler) ListPayroll(c *fiber.Ctx) error {
	out, err := h.uc.Payroll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListReviews godoc
// @Summary      Listar evaluaciones de desempeño
// @Tags         hr
// @Produce      json
// @Success      200  {array}  entity.PerformanceReview
// @Router       /api/hr/reviews [get]
func (h *HRHandler) ListReviews(c *fiber.Ctx) error {
	out, err := h.uc.PerformanceReviews(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListVacations godoc
// @Summary      Listar solicitudes de vacaciones
// @Tags         hr
// @Produce      json
// @Success      200  {array}  entity.VacationRecord
// @Router       /api/hr/vacations [get]
func (h *HRHandler) ListVacations(c *fiber.Ctx) error {
	out, err := h.uc.Vacations(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateVacation godoc
// @Summary      Crear solicitud de vacaciones
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVacationRequest  true  "Solicitud"
// @Success      201   {object}  entity.VacationRecord
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hr/vacations [post]
func (h *HRHandler) CreateVacation(c *fiber.Ctx) error {
	var in dto.CreateVacationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateVacationRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateVacation godoc
// @Summary      Actualizar solicitud de vacaciones
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateVacationRequest  true  "Cambios"
// @Success      200   {object}  entity.VacationRecord
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/hr/vacations/{id} [put]
func (h *HRHandler) UpdateVacation(c *fiber.Ctx) error {
	var in dto.UpdateVacationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateVacationRequest(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
