package entity

// PerformanceReview evaluación de desempeño de un empleado.
type PerformanceReview struct {
	ID         string `json:"id"`
	EmployeeID int    `json:"employeeId"`
	Date       string `json:"date"`
	Score      int    `json:"score"`
	Reviewer   string `json:"reviewer"`
	Comments   string `json:"comments"`
}
