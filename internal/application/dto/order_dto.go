package dto

import "github.com/shopspring/decimal"

// OrderLine par {menu_item_id, quantity} del pedido a crear.
// El orden entre pares no es significativo.
type OrderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest creación de pedido (POST /cafes/{id}/orders).
// Los precios no viajan: el servidor toma el snapshot de carta vigente.
type CreateOrderRequest struct {
	StaffID string      `json:"staff_id"`
	Items   []OrderLine `json:"items"`
}

// ── Personal ──────────────────────────────────────────────────────────────────

// StaffRequest alta/edición de empleado.
type StaffRequest struct {
	Name        string          `json:"name"`
	Role        string          `json:"role,omitempty"`
	DailySalary decimal.Decimal `json:"daily_salary"`
}

// UpdateSalaryRequest cambio de salario diario (PUT .../staff/{id}/salary).
type UpdateSalaryRequest struct {
	DailySalary decimal.Decimal `json:"daily_salary"`
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// MonthlyExpenseRequest alta/edición de gasto mensual.
type MonthlyExpenseRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Month  string          `json:"month,omitempty"` // YYYY-MM-01
}

// DailyExpenseRequest alta/edición de gasto diario.
type DailyExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

// ── Merma de carta ────────────────────────────────────────────────────────────

// MenuWasteRequest merma de producto terminado (POST .../waste/menu).
type MenuWasteRequest struct {
	MenuItemID string          `json:"menu_item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason,omitempty"`
}

// ── Upload ────────────────────────────────────────────────────────────────────

// UploadResponse respuesta de POST /upload/.
type UploadResponse struct {
	URL string `json:"url"`
}

// DeleteFileRequest borrado por nombre de archivo (DELETE /upload/).
// El borrado se clava por filename/URL, no por ID.
type DeleteFileRequest struct {
	Filename string `json:"filename"`
}
