package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ListStaff plantilla del café.
func (c *Client) ListStaff(ctx context.Context, cafeID string) ([]entity.Staff, error) {
	var staff []entity.Staff
	if err := c.get(ctx, "/cafes/"+cafeID+"/staff", nil, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// CreateStaff da de alta un empleado.
func (c *Client) CreateStaff(ctx context.Context, cafeID string, req dto.StaffRequest) (*entity.Staff, error) {
	var st entity.Staff
	if err := c.post(ctx, "/cafes/"+cafeID+"/staff", req, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// UpdateStaff edita nombre/rol de un empleado.
func (c *Client) UpdateStaff(ctx context.Context, cafeID, staffID string, req dto.StaffRequest) (*entity.Staff, error) {
	var st entity.Staff
	if err := c.put(ctx, "/cafes/"+cafeID+"/staff/"+staffID, req, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// UpdateSalary cambia el salario diario; el servidor abre un nuevo tramo
// en el historial salarial.
func (c *Client) UpdateSalary(ctx context.Context, cafeID, staffID string, salary decimal.Decimal) (*entity.Staff, error) {
	var st entity.Staff
	err := c.put(ctx, "/cafes/"+cafeID+"/staff/"+staffID+"/salary", dto.UpdateSalaryRequest{DailySalary: salary}, &st)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// SalaryHistory historial salarial de un empleado.
func (c *Client) SalaryHistory(ctx context.Context, cafeID, staffID string) ([]entity.SalaryRecord, error) {
	var records []entity.SalaryRecord
	if err := c.get(ctx, "/cafes/"+cafeID+"/staff/"+staffID+"/salary-history", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteStaff da de baja un empleado.
func (c *Client) DeleteStaff(ctx context.Context, cafeID, staffID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/staff/"+staffID, nil)
}
