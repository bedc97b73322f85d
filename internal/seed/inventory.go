package seed

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
)

// Suppliers devuelve los cinco proveedores fijos, uno por categoría de
// producto. Las órdenes de compra los referencian por nombre.
func Suppliers() []entity.Supplier {
	return []entity.Supplier{
		{
			ID: "sup-1001", Name: "TecnoSuministros SRL",
			ContactPerson: "Rafael Castillo", Email: "ventas@tecnosuministros.com",
			Phone: "+1 (809) 555-1001", Category: "Electrónica",
			PaymentTerms: "30 días", TotalPurchases: decimal.Zero, Status: "active",
		},
		{
			ID: "sup-1002", Name: "Papelería Central",
			ContactPerson: "Minerva Taveras", Email: "pedidos@papeleriacentral.com",
			Phone: "+1 (809) 555-1002", Category: "Oficina",
			PaymentTerms: "15 días", TotalPurchases: decimal.Zero, Status: "active",
		},
		{
			ID: "sup-1003", Name: "Muebles y Diseños del Este",
			ContactPerson: "Gustavo Pimentel", Email: "contacto@myddeleste.com",
			Phone: "+1 (809) 555-1003", Category: "Mobiliario",
			PaymentTerms: "45 días", TotalPurchases: decimal.Zero, Status: "active",
		},
		{
			ID: "sup-1004", Name: "Químicos Industriales Caribe",
			ContactPerson: "Dilenia Rosario", Email: "ventas@quimicoscaribe.com",
			Phone: "+1 (809) 555-1004", Category: "Limpieza",
			PaymentTerms: "30 días", TotalPurchases: decimal.Zero, Status: "active",
		},
		{
			ID: "sup-1005", Name: "Protección Total SA",
			ContactPerson: "Wilson Almonte", Email: "info@protecciontotal.com",
			Phone: "+1 (809) 555-1005", Category: "Seguridad",
			PaymentTerms: "contado", TotalPurchases: decimal.Zero, Status: "active",
		},
	}
}

var productCatalog = map[string][]string{
	"Electrónica": {"Laptop Empresarial", "Monitor 27\"", "Teclado Inalámbrico", "Impresora Láser", "Proyector HD"},
	"Oficina":     {"Resma de Papel", "Carpetas Archivo", "Bolígrafos Caja x50", "Grapadora Industrial", "Pizarra Acrílica"},
	"Mobiliario":  {"Silla Ergonómica", "Escritorio Ejecutivo", "Archivero Metálico", "Mesa de Reuniones", "Estante Modular"},
	"Limpieza":    {"Desinfectante Galón", "Paños de Microfibra", "Jabón Industrial", "Escoba Profesional", "Bolsas de Basura x100"},
	"Seguridad":   {"Extintor ABC", "Botiquín Primeros Auxilios", "Cámara de Vigilancia", "Cerradura Electrónica", "Chaleco Reflectante"},
}

var productCategories = []string{"Electrónica", "Oficina", "Mobiliario", "Limpieza", "Seguridad"}

// products 25 productos (5 categorías x 5 nombres). Cada producto queda
// atado por nombre al proveedor de su categoría; el SKU codifica las tres
// primeras letras de la categoría y un consecutivo global.
func (g *Generator) products(suppliers []entity.Supplier) []entity.Product {
	supplierByCategory := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supplierByCategory[s.Category] = s.Name
	}

	var products []entity.Product
	n := 0
	for _, cat := range productCategories {
		prefix := strings.ToUpper(string([]rune(cat)[:3]))
		for _, name := range productCatalog[cat] {
			n++
			products = append(products, entity.Product{
				ID:              fmt.Sprintf("prod-%d", n),
				Name:            name,
				SKU:             fmt.Sprintf("SKU-%s-%04d", prefix, n),
				Category:        cat,
				Description:     fmt.Sprintf("%s para uso corporativo", name),
				UnitPrice:       decimal.NewFromInt(int64(500 + g.rng.Intn(5000))),
				Stock:           20 + g.rng.Intn(200),
				MinStock:        10 + g.rng.Intn(20),
				MaxStock:        200 + g.rng.Intn(300),
				Supplier:        supplierByCategory[cat],
				LastRestockDate: g.now.AddDate(0, 0, -g.rng.Intn(30)).Format(dateLayout),
			})
		}
	}
	return products
}

var movementReasons = map[entity.MovementType][]string{
	entity.MovementEntrada: {"Reposición de stock", "Compra programada", "Devolución de cliente"},
	entity.MovementSalida:  {"Entrega a departamento", "Venta directa", "Producto dañado"},
	entity.MovementAjuste:  {"Conteo físico", "Corrección de inventario"},
}

var movementTypes = []entity.MovementType{
	entity.MovementEntrada, entity.MovementSalida, entity.MovementAjuste,
}

// movements entre 2 y 6 movimientos diarios durante los últimos 90 días.
// Solo las entradas llevan costo (precio unitario por cantidad). El stock
// de los productos no se recalcula: el histórico es ilustrativo y el stock
// sembrado ya es aleatorio.
func (g *Generator) movements(products []entity.Product, employees []entity.Employee) []entity.InventoryMovement {
	var movements []entity.InventoryMovement

	for back := 89; back >= 0; back-- {
		date := g.now.AddDate(0, 0, -back).Format(dateLayout)
		count := 2 + g.rng.Intn(5)

		for i := 0; i < count; i++ {
			prod := products[g.rng.Intn(len(products))]
			typ := movementTypes[g.rng.Intn(len(movementTypes))]
			qty := 1 + g.rng.Intn(20)
			reasons := movementReasons[typ]

			mov := entity.InventoryMovement{
				ID:          fmt.Sprintf("mov-%s-%d", date, i+1),
				ProductID:   prod.ID,
				Type:        typ,
				Quantity:    qty,
				Date:        date,
				Reason:      reasons[g.rng.Intn(len(reasons))],
				Responsible: employees[g.rng.Intn(len(employees))].ID,
			}
			if typ == entity.MovementEntrada {
				cost := prod.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
				mov.Cost = &cost
			}
			movements = append(movements, mov)
		}
	}

	// Más reciente primero, como los movimientos creados en runtime
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date > movements[j].Date
	})
	return movements
}

// purchaseOrders entre 5 y 14 órdenes por mes durante 6 meses, con 1 a 4
// líneas sobre productos del proveedor elegido. Los meses cerrados quedan
// received; el mes en curso se reparte a la mitad entre pending y
// received. Los totales recibidos se acumulan en el proveedor, mutando el
// slice.
func (g *Generator) purchaseOrders(products []entity.Product, suppliers []entity.Supplier) []entity.PurchaseOrder {
	var orders []entity.PurchaseOrder

	for back := 5; back >= 0; back-- {
		start := g.monthStart(back)
		month := monthKey(start)
		count := 5 + g.rng.Intn(10)

		for i := 0; i < count; i++ {
			sup := &suppliers[g.rng.Intn(len(suppliers))]

			var pool []entity.Product
			for _, p := range products {
				if p.Supplier == sup.Name {
					pool = append(pool, p)
				}
			}
			if len(pool) == 0 {
				pool = products
			}

			lines := 1 + g.rng.Intn(4)
			items := make([]entity.PurchaseOrderItem, 0, lines)
			total := decimal.Zero
			for j := 0; j < lines; j++ {
				prod := pool[g.rng.Intn(len(pool))]
				qty := 5 + g.rng.Intn(50)
				items = append(items, entity.PurchaseOrderItem{
					ProductID: prod.ID,
					Quantity:  qty,
					UnitPrice: prod.UnitPrice,
				})
				total = total.Add(prod.UnitPrice.Mul(decimal.NewFromInt(int64(qty))))
			}

			status := entity.PurchaseOrderReceived
			if back == 0 && g.rng.Float64() < 0.5 {
				status = entity.PurchaseOrderPending
			}

			date := g.dayInMonth(start)
			orders = append(orders, entity.PurchaseOrder{
				ID:               fmt.Sprintf("po-%s-%d", month, i+1),
				Supplier:         sup.Name,
				Date:             date,
				ExpectedDelivery: addDays(date, 7+g.rng.Intn(14)),
				Status:           status,
				Total:            total,
				Items:            items,
			})

			if status == entity.PurchaseOrderReceived {
				sup.TotalPurchases = sup.TotalPurchases.Add(total)
			}
		}
	}

	// Más reciente primero, como las órdenes creadas en runtime
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date > orders[j].Date
	})
	return orders
}

func addDays(date string, days int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(dateLayout)
}
