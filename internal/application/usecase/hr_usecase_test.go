package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/memory"
)

func storeConEmpleado(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	col := storage.NewCollections(store)
	require.NoError(t, col.SaveEmployees(context.Background(), []entity.Employee{
		{ID: 1001, Name: "Ana María García", Department: "Ventas", Salary: decimal.NewFromInt(85000), Status: "active"},
	}))
	return store
}

func TestClockIn_RegistraYRechazaDuplicado(t *testing.T) {
	store := storeConEmpleado(t)
	uc := usecase.NewHRUseCase(store)
	ctx := context.Background()

	in := dto.ClockRequest{EmployeeID: 1001, Date: "2026-08-20", Time: "08:05"}
	rec, err := uc.ClockIn(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceEntrada, rec.Type)
	assert.Equal(t, "08:05", rec.Time)

	// Segunda entrada el mismo día: rechazada
	_, err = uc.ClockIn(ctx, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// La salida del mismo día sí procede
	_, err = uc.ClockOut(ctx, dto.ClockRequest{EmployeeID: 1001, Date: "2026-08-20", Time: "17:30"})
	require.NoError(t, err)

	records, err := uc.Attendance(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestClockIn_EmpleadoInexistente(t *testing.T) {
	store := storeConEmpleado(t)
	uc := usecase.NewHRUseCase(store)

	_, err := uc.ClockIn(context.Background(), dto.ClockRequest{EmployeeID: 9999, Date: "2026-08-20"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClockIn_OtroDiaNoEsDuplicado(t *testing.T) {
	store := storeConEmpleado(t)
	uc := usecase.NewHRUseCase(store)
	ctx := context.Background()

	_, err := uc.ClockIn(ctx, dto.ClockRequest{EmployeeID: 1001, Date: "2026-08-20"})
	require.NoError(t, err)
	_, err = uc.ClockIn(ctx, dto.ClockRequest{EmployeeID: 1001, Date: "2026-08-21"})
	require.NoError(t, err)
}

func TestCreateVacationRequest_CalculaDias(t *testing.T) {
	store := storeConEmpleado(t)
	uc := usecase.NewHRUseCase(store)

	rec, err := uc.CreateVacationRequest(context.Background(), dto.CreateVacationRequest{
		EmployeeID: 1001,
		StartDate:  "2026-09-07",
		EndDate:    "2026-09-11",
		Type:       "vacation",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Days, "días inclusivos entre las dos fechas")
	assert.Equal(t, entity.VacationStatusPending, rec.Status)
	assert.Empty(t, rec.ApprovedBy)
}

func TestCreateVacationRequest_FechasInvertidas(t *testing.T) {
	store := storeConEmpleado(t)
	uc := usecase.NewHRUseCase(store)

	_, err := uc.CreateVacationRequest(context.Background(), dto.CreateVacationRequest{
		EmployeeID: 1001,
		StartDate:  "2026-09-11",
		EndDate:    "2026-09-07",
		Type:       "vacation",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateVacationRequest_AprobarYTerminal(t *testing.T) {
	store := storeConEmpleado(t)
	uc := usecase.NewHRUseCase(store)
	ctx := context.Background()

	rec, err := uc.CreateVacationRequest(ctx, dto.CreateVacationRequest{
		EmployeeID: 1001,
		StartDate:  "2026-09-07",
		EndDate:    "2026-09-11",
		Type:       "vacation",
	})
	require.NoError(t, err)

	aprobado := "approved"
	aprobadora := "Laura Fernández"
	updated, err := uc.UpdateVacationRequest(ctx, rec.ID, dto.UpdateVacationRequest{
		Status:     &aprobado,
		ApprovedBy: &aprobadora,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VacationStatusApproved, updated.Status)
	assert.Equal(t, "Laura Fernández", updated.ApprovedBy)

	// approved es terminal
	rechazado := "rejected"
	_, err = uc.UpdateVacationRequest(ctx, rec.ID, dto.UpdateVacationRequest{Status: &rechazado})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestGetEmployee(t *testing.T) {
	store := storeConEmpleado(t)
	uc := usecase.NewHRUseCase(store)
	ctx := context.Background()

	emp, err := uc.GetEmployee(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Ana María García", emp.Name)

	_, err = uc.GetEmployee(ctx, 4242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
