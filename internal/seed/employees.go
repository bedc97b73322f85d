package seed

import (
	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
)

// Employees devuelve la plantilla estática de 20 empleados (ids 1001-1020).
// A diferencia del resto de colecciones, no se genera aleatoriamente: los
// mismos empleados anclan asistencia, nómina, clientes y ventas.
func Employees() []entity.Employee {
	return []entity.Employee{
		{
			ID: 1001, Name: "Ana María García", Position: "Gerente de Ventas",
			Department: "Ventas", HireDate: "2020-03-15",
			Salary: decimal.NewFromInt(85000), PerformanceScore: 92, AttendanceRate: 98,
			Status: "active", Email: "ana.garcia@empresa.com", Phone: "+1 (555) 123-4567",
			IDCard: "001-1234567-8", Address: "Calle Principal #123, Apt 4B",
			City: "Santo Domingo", Age: 34,
			EmergencyContact: "Carlos García (Esposo)", EmergencyPhone: "+1 (555) 123-9999",
			Education: "Licenciatura en Administración de Empresas", BloodType: "O+",
		},
		{
			ID: 1002, Name: "Carlos Rodríguez", Position: "Desarrollador Senior",
			Department: "TI", HireDate: "2019-07-22",
			Salary: decimal.NewFromInt(75000), PerformanceScore: 88, AttendanceRate: 95,
			Status: "active", Email: "carlos.rodriguez@empresa.com", Phone: "+1 (555) 234-5678",
			IDCard: "001-2345678-9", Address: "Av. Independencia #456",
			City: "Santiago", Age: 29,
			EmergencyContact: "María Rodríguez (Madre)", EmergencyPhone: "+1 (555) 234-9999",
			Education: "Ingeniería en Sistemas", BloodType: "A+",
		},
		{
			ID: 1003, Name: "María López", Position: "Diseñadora UX",
			Department: "Diseño", HireDate: "2021-01-10",
			Salary: decimal.NewFromInt(68000), PerformanceScore: 95, AttendanceRate: 97,
			Status: "active", Email: "maria.lopez@empresa.com", Phone: "+1 (555) 345-6789",
			IDCard: "001-3456789-0", Address: "Calle del Sol #789",
			City: "Santo Domingo", Age: 27,
			EmergencyContact: "Pedro López (Padre)", EmergencyPhone: "+1 (555) 345-9999",
			Education: "Licenciatura en Diseño Gráfico", BloodType: "B+",
		},
		{
			ID: 1004, Name: "Juan Martínez", Position: "Analista de Datos",
			Department: "Operaciones", HireDate: "2020-09-05",
			Salary: decimal.NewFromInt(62000), PerformanceScore: 85, AttendanceRate: 92,
			Status: "active", Email: "juan.martinez@empresa.com", Phone: "+1 (555) 456-7890",
			IDCard: "001-4567890-1", Address: "Calle Duarte #234",
			City: "La Vega", Age: 31,
			EmergencyContact: "Laura Martínez (Esposa)", EmergencyPhone: "+1 (555) 456-9999",
			Education: "Maestría en Ciencia de Datos", BloodType: "AB+",
		},
		{
			ID: 1005, Name: "Laura Fernández", Position: "Gerente de RRHH",
			Department: "Recursos Humanos", HireDate: "2018-04-12",
			Salary: decimal.NewFromInt(78000), PerformanceScore: 90, AttendanceRate: 96,
			Status: "active", Email: "laura.fernandez@empresa.com", Phone: "+1 (555) 567-8901",
			IDCard: "001-5678901-2", Address: "Av. 27 de Febrero #567",
			City: "Santo Domingo", Age: 38,
			EmergencyContact: "Roberto Fernández (Hermano)", EmergencyPhone: "+1 (555) 567-9999",
			Education: "Licenciatura en Recursos Humanos", BloodType: "O-",
		},
		{
			ID: 1006, Name: "Pedro Sánchez", Position: "Contador",
			Department: "Finanzas", HireDate: "2019-11-20",
			Salary: decimal.NewFromInt(65000), PerformanceScore: 87, AttendanceRate: 94,
			Status: "active", Email: "pedro.sanchez@empresa.com", Phone: "+1 (555) 678-9012",
			IDCard: "001-6789012-3", Address: "Calle Las Mercedes #890",
			City: "Santo Domingo", Age: 35,
			EmergencyContact: "Carmen Sánchez (Madre)", EmergencyPhone: "+1 (555) 678-9999",
			Education: "Licenciatura en Contabilidad - CPA", BloodType: "A-",
		},
		{
			ID: 1007, Name: "Isabel Torres", Position: "Especialista en Marketing",
			Department: "Marketing", HireDate: "2021-06-15",
			Salary: decimal.NewFromInt(58000), PerformanceScore: 82, AttendanceRate: 90,
			Status: "active", Email: "isabel.torres@empresa.com", Phone: "+1 (555) 789-0123",
			IDCard: "001-7890123-4", Address: "Calle Espaillat #345",
			City: "Puerto Plata", Age: 26,
			EmergencyContact: "Miguel Torres (Padre)", EmergencyPhone: "+1 (555) 789-9999",
			Education: "Licenciatura en Marketing Digital", BloodType: "B-",
		},
		{
			ID: 1008, Name: "Roberto Díaz", Position: "Soporte Técnico",
			Department: "TI", HireDate: "2022-02-01",
			Salary: decimal.NewFromInt(48000), PerformanceScore: 78, AttendanceRate: 88,
			Status: "active", Email: "roberto.diaz@empresa.com", Phone: "+1 (555) 890-1234",
			IDCard: "001-8901234-5", Address: "Calle Mella #678",
			City: "San Cristóbal", Age: 24,
			EmergencyContact: "Ana Díaz (Madre)", EmergencyPhone: "+1 (555) 890-9999",
			Education: "Técnico en Redes y Sistemas", BloodType: "O+",
		},
		{
			ID: 1009, Name: "Carmen Ruiz", Position: "Ejecutiva de Ventas",
			Department: "Ventas", HireDate: "2021-09-10",
			Salary: decimal.NewFromInt(52000), PerformanceScore: 84, AttendanceRate: 91,
			Status: "active", Email: "carmen.ruiz@empresa.com", Phone: "+1 (555) 901-2345",
			IDCard: "001-9012345-6", Address: "Av. Núñez de Cáceres #901",
			City: "Santo Domingo", Age: 28,
			EmergencyContact: "Luis Ruiz (Hermano)", EmergencyPhone: "+1 (555) 901-9999",
			Education: "Licenciatura en Mercadeo", BloodType: "A+",
		},
		{
			ID: 1010, Name: "Miguel Ángel Castro", Position: "Desarrollador Junior",
			Department: "TI", HireDate: "2022-05-20",
			Salary: decimal.NewFromInt(45000), PerformanceScore: 75, AttendanceRate: 85,
			Status: "active", Email: "miguel.castro@empresa.com", Phone: "+1 (555) 012-3456",
			IDCard: "001-0123456-7", Address: "Calle Sánchez #234",
			City: "Santo Domingo", Age: 23,
			EmergencyContact: "Rosa Castro (Madre)", EmergencyPhone: "+1 (555) 012-9999",
			Education: "Ingeniería en Software", BloodType: "B+",
		},
		{
			ID: 1011, Name: "Sofía Morales", Position: "Gerente de Operaciones",
			Department: "Operaciones", HireDate: "2019-03-08",
			Salary: decimal.NewFromInt(82000), PerformanceScore: 93, AttendanceRate: 97,
			Status: "active", Email: "sofia.morales@empresa.com", Phone: "+1 (555) 123-4568",
			IDCard: "001-1234568-9", Address: "Calle Hostos #567",
			City: "Santo Domingo", Age: 36,
			EmergencyContact: "Diego Morales (Esposo)", EmergencyPhone: "+1 (555) 123-8888",
			Education: "MBA en Gestión de Operaciones", BloodType: "AB-",
		},
		{
			ID: 1012, Name: "Fernando Vega", Position: "Analista Financiero",
			Department: "Finanzas", HireDate: "2020-08-15",
			Salary: decimal.NewFromInt(60000), PerformanceScore: 86, AttendanceRate: 93,
			Status: "active", Email: "fernando.vega@empresa.com", Phone: "+1 (555) 234-5679",
			IDCard: "001-2345679-0", Address: "Av. Abraham Lincoln #890",
			City: "Santo Domingo", Age: 30,
			EmergencyContact: "Patricia Vega (Hermana)", EmergencyPhone: "+1 (555) 234-8888",
			Education: "Licenciatura en Finanzas", BloodType: "O+",
		},
		{
			ID: 1013, Name: "Patricia Herrera", Position: "Coordinadora de Proyectos",
			Department: "Operaciones", HireDate: "2021-04-22",
			Salary: decimal.NewFromInt(55000), PerformanceScore: 81, AttendanceRate: 89,
			Status: "active", Email: "patricia.herrera@empresa.com", Phone: "+1 (555) 345-6780",
			IDCard: "001-3456780-1", Address: "Calle Padre Billini #123",
			City: "Santo Domingo", Age: 29,
			EmergencyContact: "Jorge Herrera (Padre)", EmergencyPhone: "+1 (555) 345-8888",
			Education: "Licenciatura en Gestión de Proyectos", BloodType: "A+",
		},
		{
			ID: 1014, Name: "Andrés Jiménez", Position: "Diseñador Gráfico",
			Department: "Diseño", HireDate: "2022-01-10",
			Salary: decimal.NewFromInt(50000), PerformanceScore: 79, AttendanceRate: 87,
			Status: "active", Email: "andres.jimenez@empresa.com", Phone: "+1 (555) 456-7891",
			IDCard: "001-4567891-2", Address: "Calle Arzobispo Meriño #456",
			City: "Santo Domingo", Age: 25,
			EmergencyContact: "Luisa Jiménez (Madre)", EmergencyPhone: "+1 (555) 456-8888",
			Education: "Licenciatura en Arte y Diseño", BloodType: "B-",
		},
		{
			ID: 1015, Name: "Valentina Romero", Position: "Gerente de Marketing",
			Department: "Marketing", HireDate: "2019-06-30",
			Salary: decimal.NewFromInt(80000), PerformanceScore: 91, AttendanceRate: 96,
			Status: "active", Email: "valentina.romero@empresa.com", Phone: "+1 (555) 567-8902",
			IDCard: "001-5678902-3", Address: "Av. Winston Churchill #789",
			City: "Santo Domingo", Age: 33,
			EmergencyContact: "Sebastián Romero (Esposo)", EmergencyPhone: "+1 (555) 567-8888",
			Education: "Maestría en Marketing Estratégico", BloodType: "O-",
		},
		{
			ID: 1016, Name: "Diego Navarro", Position: "Especialista en Ventas",
			Department: "Ventas", HireDate: "2021-11-05",
			Salary: decimal.NewFromInt(54000), PerformanceScore: 83, AttendanceRate: 90,
			Status: "active", Email: "diego.navarro@empresa.com", Phone: "+1 (555) 678-9013",
			IDCard: "001-6789013-4", Address: "Calle José Reyes #234",
			City: "Santiago", Age: 27,
			EmergencyContact: "Elena Navarro (Madre)", EmergencyPhone: "+1 (555) 678-8888",
			Education: "Licenciatura en Ventas y Negocios", BloodType: "A-",
		},
		{
			ID: 1017, Name: "Lucía Mendoza", Position: "Asistente de RRHH",
			Department: "Recursos Humanos", HireDate: "2022-03-15",
			Salary: decimal.NewFromInt(42000), PerformanceScore: 76, AttendanceRate: 86,
			Status: "active", Email: "lucia.mendoza@empresa.com", Phone: "+1 (555) 789-0124",
			IDCard: "001-7890124-5", Address: "Calle El Conde #567",
			City: "Santo Domingo", Age: 24,
			EmergencyContact: "Manuel Mendoza (Padre)", EmergencyPhone: "+1 (555) 789-8888",
			Education: "Licenciatura en Psicología Organizacional", BloodType: "B+",
		},
		{
			ID: 1018, Name: "Javier Ortiz", Position: "Arquitecto de Software",
			Department: "TI", HireDate: "2018-09-01",
			Salary: decimal.NewFromInt(95000), PerformanceScore: 94, AttendanceRate: 98,
			Status: "active", Email: "javier.ortiz@empresa.com", Phone: "+1 (555) 890-1235",
			IDCard: "001-8901235-6", Address: "Av. Sarasota #890",
			City: "Santo Domingo", Age: 37,
			EmergencyContact: "Carolina Ortiz (Esposa)", EmergencyPhone: "+1 (555) 890-8888",
			Education: "Maestría en Arquitectura de Software", BloodType: "AB+",
		},
		{
			ID: 1019, Name: "Gabriela Silva", Position: "Analista de Marketing",
			Department: "Marketing", HireDate: "2022-07-20",
			Salary: decimal.NewFromInt(47000), PerformanceScore: 77, AttendanceRate: 84,
			Status: "active", Email: "gabriela.silva@empresa.com", Phone: "+1 (555) 901-2346",
			IDCard: "001-9012346-7", Address: "Calle Cayetano Germosén #123",
			City: "Santo Domingo", Age: 25,
			EmergencyContact: "Ricardo Silva (Padre)", EmergencyPhone: "+1 (555) 901-8888",
			Education: "Licenciatura en Comunicación Social", BloodType: "O+",
		},
		{
			ID: 1020, Name: "Raúl Vargas", Position: "Ejecutivo de Cuentas",
			Department: "Ventas", HireDate: "2020-12-10",
			Salary: decimal.NewFromInt(56000), PerformanceScore: 80, AttendanceRate: 88,
			Status: "active", Email: "raul.vargas@empresa.com", Phone: "+1 (555) 012-3457",
			IDCard: "001-0123457-8", Address: "Av. Lope de Vega #456",
			City: "Santo Domingo", Age: 32,
			EmergencyContact: "Marina Vargas (Esposa)", EmergencyPhone: "+1 (555) 012-8888",
			Education: "Licenciatura en Administración Comercial", BloodType: "A+",
		},
	}
}
