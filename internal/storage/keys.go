package storage

// Claves fijas de las colecciones persistidas. Cada clave guarda el arreglo
// JSON completo de su entidad; no hay versionado de esquema y la única
// forma de re-sembrar es vaciar el almacén.
const (
	KeyEmployees      = "dss-employees"
	KeyAttendance     = "dss-attendance"
	KeyPerformance    = "dss-performance"
	KeyPayroll        = "dss-payroll"
	KeyVacations      = "dss-vacations"
	KeyTransactions   = "dss-transactions"
	KeyBudgets        = "dss-budgets"
	KeyMetrics        = "dss-metrics"
	KeyCustomers      = "dss-customers"
	KeySales          = "dss-sales"
	KeySalesMetrics   = "dss-sales-metrics"
	KeyProducts       = "dss-products"
	KeyMovements      = "dss-movements"
	KeySuppliers      = "dss-suppliers"
	KeyPurchaseOrders = "dss-purchase-orders"
)
