package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff empleado del café con su salario diario vigente.
type Staff struct {
	ID          string          `json:"id"`
	CafeID      string          `json:"cafe_id,omitempty"`
	Name        string          `json:"name"`
	Role        string          `json:"role,omitempty"`
	DailySalary decimal.Decimal `json:"daily_salary"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
}

// SalaryRecord historial salarial: el salario vigente en una fecha es el
// registro más reciente con StartDate <= fecha. Lo usa el servidor para
// calcular el costo de salarios de los reportes diarios retroactivos.
type SalaryRecord struct {
	ID          string          `json:"id"`
	StaffID     string          `json:"staff_id"`
	DailySalary decimal.Decimal `json:"daily_salary"`
	StartDate   string          `json:"start_date"` // YYYY-MM-DD
}
