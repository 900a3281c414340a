package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem materia prima del inventario del café.
type StockItem struct {
	ID                string          `json:"id"`
	CafeID            string          `json:"cafe_id,omitempty"`
	Name              string          `json:"name"`
	UnitOfMeasure     string          `json:"unit_of_measure"`
	CurrentQuantity   decimal.Decimal `json:"current_quantity"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// StockMovement entrada del historial de un StockItem
// (restock, venta, merma, ajuste manual).
type StockMovement struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	StockName   string          `json:"stock_item_name,omitempty"`
	Type        string          `json:"type"` // restock | sale | waste | adjustment
	Quantity    decimal.Decimal `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
