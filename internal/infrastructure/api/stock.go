package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ListStock inventario completo del café.
func (c *Client) ListStock(ctx context.Context, cafeID string) ([]entity.StockItem, error) {
	var items []entity.StockItem
	if err := c.get(ctx, "/cafes/"+cafeID+"/stock", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateStockItem da de alta un ítem de inventario.
func (c *Client) CreateStockItem(ctx context.Context, cafeID string, req dto.StockItemRequest) (*entity.StockItem, error) {
	var item entity.StockItem
	if err := c.post(ctx, "/cafes/"+cafeID+"/stock", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateStockItem edita nombre, unidad, cantidades y umbral.
func (c *Client) UpdateStockItem(ctx context.Context, cafeID, itemID string, req dto.StockItemRequest) (*entity.StockItem, error) {
	var item entity.StockItem
	if err := c.put(ctx, "/cafes/"+cafeID+"/stock/"+itemID, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateStockCost cambia solo el costo unitario.
func (c *Client) UpdateStockCost(ctx context.Context, cafeID, itemID string, cost decimal.Decimal) (*entity.StockItem, error) {
	var item entity.StockItem
	err := c.put(ctx, "/cafes/"+cafeID+"/stock/"+itemID+"/cost", dto.UpdateCostRequest{CostPerUnit: cost}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Restock registra una entrada de stock.
func (c *Client) Restock(ctx context.Context, cafeID, itemID string, req dto.RestockRequest) (*entity.StockItem, error) {
	var item entity.StockItem
	if err := c.post(ctx, "/cafes/"+cafeID+"/stock/"+itemID+"/restock", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RecordStockWaste registra merma de materia prima.
func (c *Client) RecordStockWaste(ctx context.Context, cafeID, itemID string, req dto.StockWasteRequest) (*entity.StockItem, error) {
	var item entity.StockItem
	if err := c.post(ctx, "/cafes/"+cafeID+"/stock/"+itemID+"/waste", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// StockItemHistory historial de movimientos de un ítem.
func (c *Client) StockItemHistory(ctx context.Context, cafeID, itemID string) ([]entity.StockMovement, error) {
	var moves []entity.StockMovement
	if err := c.get(ctx, "/cafes/"+cafeID+"/stock/"+itemID+"/history", nil, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

// StockHistory historial de movimientos de todo el inventario.
func (c *Client) StockHistory(ctx context.Context, cafeID string) ([]entity.StockMovement, error) {
	var moves []entity.StockMovement
	if err := c.get(ctx, "/cafes/"+cafeID+"/stock/history", nil, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

// DeleteStockItem elimina un ítem de inventario.
func (c *Client) DeleteStockItem(ctx context.Context, cafeID, itemID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/stock/"+itemID, nil)
}
