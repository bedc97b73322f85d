package seed

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
)

// attendance marcaciones de los últimos 30 días. Cada empleado tiene un 10%
// de ausencia por día; los presentes marcan entrada entre 08:00 y 09:59 y
// salida entre 17:00 y 18:59.
func (g *Generator) attendance(employees []entity.Employee) []entity.AttendanceRecord {
	records := make([]entity.AttendanceRecord, 0, len(employees)*30*2)

	for back := 29; back >= 0; back-- {
		day := g.now.AddDate(0, 0, -back)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		date := day.Format(dateLayout)

		for _, emp := range employees {
			if g.rng.Float64() < 0.10 {
				continue
			}
			entrada := fmt.Sprintf("%02d:%02d", 8+g.rng.Intn(2), g.rng.Intn(60))
			salida := fmt.Sprintf("%02d:%02d", 17+g.rng.Intn(2), g.rng.Intn(60))

			records = append(records,
				entity.AttendanceRecord{
					ID:         fmt.Sprintf("%d-%s-entrada", emp.ID, date),
					EmployeeID: emp.ID,
					Date:       date,
					Time:       entrada,
					Type:       entity.AttendanceEntrada,
				},
				entity.AttendanceRecord{
					ID:         fmt.Sprintf("%d-%s-salida", emp.ID, date),
					EmployeeID: emp.ID,
					Date:       date,
					Time:       salida,
					Type:       entity.AttendanceSalida,
				},
			)
		}
	}
	return records
}

var reviewComments = []string{
	"Excelente desempeño en los objetivos del periodo",
	"Cumple con las expectativas del puesto",
	"Buena colaboración con el equipo, puede mejorar la puntualidad",
	"Supera las metas asignadas de forma consistente",
	"Necesita reforzar la comunicación con otras áreas",
	"Gran iniciativa en los proyectos del trimestre",
}

// performanceReviews tres evaluaciones por empleado, una cada cuatro meses
// hacia atrás, con puntajes entre 70 y 99.
func (g *Generator) performanceReviews(employees []entity.Employee) []entity.PerformanceReview {
	reviews := make([]entity.PerformanceReview, 0, len(employees)*3)

	for _, emp := range employees {
		for i := 0; i < 3; i++ {
			date := g.now.AddDate(0, -4*i, 0).Format(dateLayout)
			reviews = append(reviews, entity.PerformanceReview{
				ID:         fmt.Sprintf("rev-%d-%d", emp.ID, i+1),
				EmployeeID: emp.ID,
				Date:       date,
				Score:      70 + g.rng.Intn(30),
				Reviewer:   "Laura Fernández",
				Comments:   reviewComments[g.rng.Intn(len(reviewComments))],
			})
		}
	}
	return reviews
}

// payroll nómina de los últimos 6 meses por empleado. El salario base es la
// doceava parte del salario anual; el bono (10% del base) aparece con 30%
// de probabilidad y las deducciones son un 15% fijo del base. El mes en
// curso queda en processing, los anteriores en paid.
func (g *Generator) payroll(employees []entity.Employee) []entity.PayrollRecord {
	twelve := decimal.NewFromInt(12)
	bonusRate := decimal.NewFromFloat(0.10)
	deductionRate := decimal.NewFromFloat(0.15)

	records := make([]entity.PayrollRecord, 0, len(employees)*6)

	for back := 5; back >= 0; back-- {
		month := monthKey(g.monthStart(back))
		status := entity.PayrollStatusPaid
		if back == 0 {
			status = entity.PayrollStatusProcessing
		}

		for _, emp := range employees {
			basic := emp.Salary.Div(twelve).Round(2)
			bonus := decimal.Zero
			if g.rng.Float64() > 0.7 {
				bonus = basic.Mul(bonusRate).Round(2)
			}
			deductions := basic.Mul(deductionRate).Round(2)

			records = append(records, entity.PayrollRecord{
				ID:          fmt.Sprintf("pay-%d-%s", emp.ID, month),
				EmployeeID:  emp.ID,
				Month:       month,
				BasicSalary: basic,
				Bonus:       bonus,
				Deductions:  deductions,
				NetSalary:   basic.Add(bonus).Sub(deductions),
				PaymentDate: month + "-28",
				Status:      status,
			})
		}
	}
	return records
}

var vacationTypes = []entity.VacationType{
	entity.VacationTypeVacation,
	entity.VacationTypeSick,
	entity.VacationTypePersonal,
	entity.VacationTypeMaternity,
}

// El muestreo con tres approved por cada pending deja la mayoría del
// histórico resuelto.
var vacationStatuses = []entity.VacationStatus{
	entity.VacationStatusApproved,
	entity.VacationStatusApproved,
	entity.VacationStatusApproved,
	entity.VacationStatusPending,
}

// vacations entre una y cuatro solicitudes por empleado dentro de los
// últimos 6 meses, de 3 a 12 días.
func (g *Generator) vacations(employees []entity.Employee) []entity.VacationRecord {
	var records []entity.VacationRecord

	for _, emp := range employees {
		count := 1 + g.rng.Intn(4)
		for i := 0; i < count; i++ {
			start := g.now.AddDate(0, 0, -g.rng.Intn(180))
			days := 3 + g.rng.Intn(10)
			status := vacationStatuses[g.rng.Intn(len(vacationStatuses))]

			rec := entity.VacationRecord{
				ID:          fmt.Sprintf("vac-%d-%d", emp.ID, i+1),
				EmployeeID:  emp.ID,
				StartDate:   start.Format(dateLayout),
				EndDate:     start.AddDate(0, 0, days-1).Format(dateLayout),
				Days:        days,
				Type:        vacationTypes[g.rng.Intn(len(vacationTypes))],
				Status:      status,
				RequestDate: start.AddDate(0, 0, -(7 + g.rng.Intn(14))).Format(dateLayout),
			}
			if status == entity.VacationStatusApproved {
				rec.ApprovedBy = "Laura Fernández"
			}
			records = append(records, rec)
		}
	}

	// Más reciente primero, igual que las solicitudes creadas en runtime
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RequestDate > records[j].RequestDate
	})
	return records
}
