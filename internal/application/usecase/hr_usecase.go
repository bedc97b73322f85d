package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

// HRUseCase operaciones de recursos humanos: empleados, asistencia, nómina,
// evaluaciones y vacaciones.
type HRUseCase struct {
	store storage.TxStore
}

// NewHRUseCase construye el caso de uso.
func NewHRUseCase(store storage.TxStore) *HRUseCase {
	return &HRUseCase{store: store}
}

// Employees lista todos los empleados.
func (uc *HRUseCase) Employees(ctx context.Context) ([]entity.Employee, error) {
	return storage.NewCollections(uc.store).Employees(ctx)
}

// GetEmployee busca un empleado por id.
func (uc *HRUseCase) GetEmployee(ctx context.Context, id int) (*entity.Employee, error) {
	employees, err := storage.NewCollections(uc.store).Employees(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].ID == id {
			return &employees[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Attendance lista las marcaciones de asistencia.
func (uc *HRUseCase) Attendance(ctx context.Context) ([]entity.AttendanceRecord, error) {
	return storage.NewCollections(uc.store).Attendance(ctx)
}

// Payroll lista los registros de nómina.
func (uc *HRUseCase) Payroll(ctx context.Context) ([]entity.PayrollRecord, error) {
	return storage.NewCollections(uc.store).Payroll(ctx)
}

// PerformanceReviews lista las evaluaciones de desempeño.
func (uc *HRUseCase) PerformanceReviews(ctx context.Context) ([]entity.PerformanceReview, error) {
	return storage.NewCollections(uc.store).PerformanceReviews(ctx)
}

// Vacations lista las solicitudes de vacaciones.
func (uc *HRUseCase) Vacations(ctx context.Context) ([]entity.VacationRecord, error) {
	return storage.NewCollections(uc.store).Vacations(ctx)
}

// ClockIn registra la entrada del día para un empleado.
func (uc *HRUseCase) ClockIn(ctx context.Context, in dto.ClockRequest) (*entity.AttendanceRecord, error) {
	return uc.clock(ctx, in, entity.AttendanceEntrada)
}

// ClockOut registra la salida del día para un empleado.
func (uc *HRUseCase) ClockOut(ctx context.Context, in dto.ClockRequest) (*entity.AttendanceRecord, error) {
	return uc.clock(ctx, in, entity.AttendanceSalida)
}

// clock valida y agrega la marcación. Una segunda marcación del mismo tipo
// para el mismo empleado y fecha se rechaza con ErrDuplicate.
func (uc *HRUseCase) clock(ctx context.Context, in dto.ClockRequest, typ entity.AttendanceType) (*entity.AttendanceRecord, error) {
	date := in.Date
	if date == "" {
		date = today()
	}
	hour := in.Time
	if hour == "" {
		hour = time.Now().Format("15:04")
	}

	var record *entity.AttendanceRecord
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		employees, err := col.Employees(ctx)
		if err != nil {
			return err
		}
		found := false
		for i := range employees {
			if employees[i].ID == in.EmployeeID {
				found = true
				break
			}
		}
		if !found {
			return domain.ErrNotFound
		}

		records, err := col.Attendance(ctx)
		if err != nil {
			return err
		}
		for i := range records {
			if records[i].EmployeeID == in.EmployeeID && records[i].Date == date && records[i].Type == typ {
				return domain.ErrDuplicate
			}
		}

		rec := entity.AttendanceRecord{
			ID:         fmt.Sprintf("%d-%s-%s-%d", in.EmployeeID, date, typ, time.Now().UnixMilli()),
			EmployeeID: in.EmployeeID,
			Date:       date,
			Time:       hour,
			Type:       typ,
		}
		records = append(records, rec)
		if err := col.SaveAttendance(ctx, records); err != nil {
			return err
		}
		record = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CreateVacationRequest registra una solicitud en estado pending. Los días
// se calculan inclusivos entre las dos fechas.
func (uc *HRUseCase) CreateVacationRequest(ctx context.Context, in dto.CreateVacationRequest) (*entity.VacationRecord, error) {
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	days := int(end.Sub(start).Hours()/24) + 1

	var record *entity.VacationRecord
	err = uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		employees, err := col.Employees(ctx)
		if err != nil {
			return err
		}
		found := false
		for i := range employees {
			if employees[i].ID == in.EmployeeID {
				found = true
				break
			}
		}
		if !found {
			return domain.ErrNotFound
		}

		records, err := col.Vacations(ctx)
		if err != nil {
			return err
		}
		rec := entity.VacationRecord{
			ID:          newID("vac"),
			EmployeeID:  in.EmployeeID,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Days:        days,
			Type:        entity.VacationType(in.Type),
			Status:      entity.VacationStatusPending,
			RequestDate: today(),
		}
		records = append([]entity.VacationRecord{rec}, records...)
		if err := col.SaveVacations(ctx, records); err != nil {
			return err
		}
		record = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateVacationRequest fusión parcial de una solicitud. El cambio de
// estado se valida contra la máquina de transiciones.
func (uc *HRUseCase) UpdateVacationRequest(ctx context.Context, id string, in dto.UpdateVacationRequest) (*entity.VacationRecord, error) {
	var record *entity.VacationRecord
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		records, err := col.Vacations(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range records {
			if records[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		rec := &records[idx]
		if in.Status != nil {
			next := entity.VacationStatus(*in.Status)
			if !rec.Status.CanTransitionTo(next) {
				return domain.ErrInvalidTransition
			}
			rec.Status = next
		}
		if in.ApprovedBy != nil {
			rec.ApprovedBy = *in.ApprovedBy
		}

		if err := col.SaveVacations(ctx, records); err != nil {
			return err
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
