package api

import (
	"context"
	"net/url"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ── Gastos mensuales ──────────────────────────────────────────────────────────

// ListMonthlyExpenses gastos fijos; month (YYYY-MM-01) filtra, "" trae todos.
func (c *Client) ListMonthlyExpenses(ctx context.Context, cafeID, month string) ([]entity.MonthlyExpense, error) {
	var q url.Values
	if month != "" {
		q = url.Values{"month": {month}}
	}
	var out []entity.MonthlyExpense
	if err := c.get(ctx, "/cafes/"+cafeID+"/expenses/monthly", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMonthlyExpense crea un gasto fijo mensual.
func (c *Client) CreateMonthlyExpense(ctx context.Context, cafeID string, req dto.MonthlyExpenseRequest) (*entity.MonthlyExpense, error) {
	var e entity.MonthlyExpense
	if err := c.post(ctx, "/cafes/"+cafeID+"/expenses/monthly", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateMonthlyExpense edita un gasto fijo mensual.
func (c *Client) UpdateMonthlyExpense(ctx context.Context, cafeID, expenseID string, req dto.MonthlyExpenseRequest) (*entity.MonthlyExpense, error) {
	var e entity.MonthlyExpense
	if err := c.put(ctx, "/cafes/"+cafeID+"/expenses/monthly/"+expenseID, req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteMonthlyExpense elimina un gasto fijo mensual.
func (c *Client) DeleteMonthlyExpense(ctx context.Context, cafeID, expenseID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/expenses/monthly/"+expenseID, nil)
}

// ── Gastos diarios ────────────────────────────────────────────────────────────

// ListDailyExpenses gastos puntuales; date (YYYY-MM-DD) filtra, "" trae todos.
func (c *Client) ListDailyExpenses(ctx context.Context, cafeID, date string) ([]entity.DailyExpense, error) {
	var q url.Values
	if date != "" {
		q = url.Values{"date": {date}}
	}
	var out []entity.DailyExpense
	if err := c.get(ctx, "/cafes/"+cafeID+"/expenses/daily", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDailyExpense crea un gasto puntual.
func (c *Client) CreateDailyExpense(ctx context.Context, cafeID string, req dto.DailyExpenseRequest) (*entity.DailyExpense, error) {
	var e entity.DailyExpense
	if err := c.post(ctx, "/cafes/"+cafeID+"/expenses/daily", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateDailyExpense edita un gasto puntual.
func (c *Client) UpdateDailyExpense(ctx context.Context, cafeID, expenseID string, req dto.DailyExpenseRequest) (*entity.DailyExpense, error) {
	var e entity.DailyExpense
	if err := c.put(ctx, "/cafes/"+cafeID+"/expenses/daily/"+expenseID, req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteDailyExpense elimina un gasto puntual.
func (c *Client) DeleteDailyExpense(ctx context.Context, cafeID, expenseID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/expenses/daily/"+expenseID, nil)
}
