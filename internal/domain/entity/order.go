package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de un pedido ya creado. Price/CostAtSale son snapshots
// tomados por el servidor en el momento de la venta; no cambian si luego
// se edita la carta.
type OrderItem struct {
	ID           string          `json:"id,omitempty"`
	MenuItemID   string          `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name,omitempty"`
	Quantity     int             `json:"quantity"`
	PriceAtSale  decimal.Decimal `json:"price_at_sale"`
	CostAtSale   decimal.Decimal `json:"cost_at_sale"`
}

// Order pedido registrado en el servidor.
type Order struct {
	ID           string          `json:"id"`
	CafeID       string          `json:"cafe_id,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
	StaffID      string          `json:"staff_id"`
	StaffName    string          `json:"staff_name,omitempty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Items        []OrderItem     `json:"items,omitempty"`
}

// MenuWasteRecord merma de producto terminado (no de materia prima):
// descuenta la receta completa del stock.
type MenuWasteRecord struct {
	ID           string          `json:"id"`
	MenuItemID   string          `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}
