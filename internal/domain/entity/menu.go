package entity

import "github.com/shopspring/decimal"

// Category categoría de carta (bebidas calientes, postres, etc.).
type Category struct {
	ID     string `json:"id"`
	CafeID string `json:"cafe_id,omitempty"`
	Name   string `json:"name"`
}

// MenuItem producto vendible de la carta. SalePrice debe ser > 0 para
// poder entrar a un carrito; el costo se deriva de la receta.
type MenuItem struct {
	ID         string          `json:"id"`
	CafeID     string          `json:"cafe_id,omitempty"`
	Name       string          `json:"name"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	Category   string          `json:"category,omitempty"`
	CategoryID string          `json:"category_id,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
}

// RecipeLine vincula un MenuItem con un StockItem que consume:
// QuantityUsed unidades de stock por unidad vendida.
type RecipeLine struct {
	ID          string          `json:"id,omitempty"`
	MenuItemID  string          `json:"menu_item_id,omitempty"`
	StockItemID string          `json:"stock_item_id"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
}
