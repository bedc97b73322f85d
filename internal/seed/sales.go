package seed

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
)

var customerFirstNames = []string{
	"José", "Marta", "Luis", "Elena", "Ramón", "Yolanda", "Héctor",
	"Rosa", "Víctor", "Claudia", "Franklin", "Altagracia", "Omar", "Nelly",
}

var customerLastNames = []string{
	"Peralta", "Guzmán", "Reyes", "Núñez", "Santana", "Medina",
	"Báez", "Cabrera", "Polanco", "Tejada", "Rosario", "Arias",
}

var companyPrefixes = []string{
	"Comercial", "Distribuidora", "Grupo", "Importadora",
	"Corporación", "Industrias", "Servicios", "Inversiones",
}

var companySuffixes = []string{
	"del Caribe", "Nacional", "del Este", "Global",
	"Dominicana", "y Asociados", "Premium", "Express",
}

var industries = []string{
	"Retail", "Tecnología", "Salud", "Educación",
	"Construcción", "Alimentos", "Logística", "Turismo",
}

// customers 50 clientes asignados a empleados del departamento de Ventas,
// con distribución 80/10/10 entre active, inactive y prospect. El acumulado
// de compras arranca en cero; sales lo llena con las ventas completadas.
func (g *Generator) customers(employees []entity.Employee) []entity.Customer {
	var salesTeam []entity.Employee
	for _, emp := range employees {
		if emp.Department == "Ventas" {
			salesTeam = append(salesTeam, emp)
		}
	}

	customers := make([]entity.Customer, 0, 50)
	for i := 0; i < 50; i++ {
		name := customerFirstNames[g.rng.Intn(len(customerFirstNames))] + " " +
			customerLastNames[g.rng.Intn(len(customerLastNames))]
		company := companyPrefixes[g.rng.Intn(len(companyPrefixes))] + " " +
			companySuffixes[g.rng.Intn(len(companySuffixes))]

		status := entity.CustomerStatusActive
		switch roll := g.rng.Float64(); {
		case roll >= 0.9:
			status = entity.CustomerStatusProspect
		case roll >= 0.8:
			status = entity.CustomerStatusInactive
		}

		customers = append(customers, entity.Customer{
			ID:             fmt.Sprintf("customer-%d", 1000+i),
			Name:           name,
			Email:          fmt.Sprintf("contacto%d@cliente.com", 1000+i),
			Phone:          fmt.Sprintf("+1 (809) %03d-%04d", 200+g.rng.Intn(700), g.rng.Intn(10000)),
			Company:        company,
			Industry:       industries[g.rng.Intn(len(industries))],
			Status:         status,
			AssignedTo:     salesTeam[g.rng.Intn(len(salesTeam))].ID,
			CreatedDate:    g.now.AddDate(0, 0, -g.rng.Intn(730)).Format(dateLayout),
			LastContact:    g.now.AddDate(0, 0, -g.rng.Intn(60)).Format(dateLayout),
			TotalPurchases: decimal.Zero,
		})
	}
	return customers
}

var saleProducts = []string{
	"Licencia Enterprise", "Plan Anual Premium", "Consultoría de Procesos",
	"Soporte Extendido", "Módulo de Reportes", "Implementación ERP",
}

// sales entre 40 y 69 ventas por mes durante 6 meses, atendidas por el
// empleado asignado al cliente. El 95% se completa; el resto queda pending
// o cancelled a partes iguales. Las completadas acumulan TotalPurchases y
// actualizan LastContact del cliente, mutando el slice recibido.
func (g *Generator) sales(customers []entity.Customer) []entity.Sale {
	var sales []entity.Sale

	for back := 5; back >= 0; back-- {
		start := g.monthStart(back)
		month := monthKey(start)
		count := 40 + g.rng.Intn(30)

		for i := 0; i < count; i++ {
			cust := &customers[g.rng.Intn(len(customers))]
			amount := decimal.NewFromInt(int64(5000 + g.rng.Intn(40000)))
			commission := amount.Mul(decimal.NewFromFloat(0.05 + g.rng.Float64()*0.1)).Round(2)

			status := entity.SaleStatusCompleted
			if g.rng.Float64() <= 0.05 {
				status = entity.SaleStatusPending
				if g.rng.Float64() < 0.5 {
					status = entity.SaleStatusCancelled
				}
			}

			sale := entity.Sale{
				ID:         fmt.Sprintf("sale-%s-%d", month, i+1),
				CustomerID: cust.ID,
				EmployeeID: cust.AssignedTo,
				Date:       g.dayInMonth(start),
				Amount:     amount,
				Commission: commission,
				Status:     status,
				Product:    saleProducts[g.rng.Intn(len(saleProducts))],
				Quantity:   1 + g.rng.Intn(10),
			}

			if status == entity.SaleStatusCompleted {
				cust.TotalPurchases = cust.TotalPurchases.Add(amount)
				if sale.Date > cust.LastContact {
					cust.LastContact = sale.Date
				}
			}
			sales = append(sales, sale)
		}
	}

	// Más reciente primero, como las ventas creadas en runtime
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date > sales[j].Date
	})
	return sales
}

// salesMetrics agrega las ventas completadas por mes.
func salesMetrics(sales []entity.Sale) []entity.SalesMetrics {
	type bucket struct {
		total       decimal.Decimal
		commissions decimal.Decimal
		count       int
	}
	byMonth := map[string]*bucket{}

	for _, s := range sales {
		if s.Status != entity.SaleStatusCompleted || len(s.Date) < 7 {
			continue
		}
		month := s.Date[:7]
		b := byMonth[month]
		if b == nil {
			b = &bucket{}
			byMonth[month] = b
		}
		b.total = b.total.Add(s.Amount)
		b.commissions = b.commissions.Add(s.Commission)
		b.count++
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	metrics := make([]entity.SalesMetrics, 0, len(months))
	for _, m := range months {
		b := byMonth[m]
		avg := decimal.Zero
		if b.count > 0 {
			avg = b.total.Div(decimal.NewFromInt(int64(b.count))).Round(2)
		}
		metrics = append(metrics, entity.SalesMetrics{
			Month:            m,
			TotalSales:       b.total,
			TotalCommissions: b.commissions,
			AverageTicket:    avg,
			NumberOfSales:    b.count,
		})
	}
	return metrics
}
