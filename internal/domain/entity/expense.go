package entity

import "github.com/shopspring/decimal"

// MonthlyExpense gasto fijo mensual (alquiler, internet...). Para los
// reportes diarios el servidor lo prorratea: amount / días del mes.
type MonthlyExpense struct {
	ID     string          `json:"id"`
	CafeID string          `json:"cafe_id,omitempty"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Month  string          `json:"month,omitempty"` // YYYY-MM-01
}

// DailyExpense gasto puntual de un día concreto.
type DailyExpense struct {
	ID          string          `json:"id"`
	CafeID      string          `json:"cafe_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
}
