package dto

import "github.com/shopspring/decimal"

// CreateCafeRequest alta de café para POST /cafes y POST /admin/cafes.
type CreateCafeRequest struct {
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	CurrencySymbol string `json:"currency_symbol,omitempty"`
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// StockItemRequest alta/edición de ítem de inventario.
type StockItemRequest struct {
	Name              string          `json:"name"`
	UnitOfMeasure     string          `json:"unit_of_measure"`
	CurrentQuantity   decimal.Decimal `json:"current_quantity"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// UpdateCostRequest cambio de costo unitario (PUT .../stock/{id}/cost).
type UpdateCostRequest struct {
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// RestockRequest entrada de stock (POST .../stock/{id}/restock).
type RestockRequest struct {
	Quantity    decimal.Decimal `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit,omitempty"`
}

// StockWasteRequest merma de materia prima (POST .../stock/{id}/waste).
type StockWasteRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

// ── Carta ─────────────────────────────────────────────────────────────────────

// MenuItemRequest alta/edición de producto de carta.
type MenuItemRequest struct {
	Name       string          `json:"name"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CategoryID string          `json:"category_id,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
}

// UpdatePriceRequest cambio de precio (PUT .../menu/{id}/price).
type UpdatePriceRequest struct {
	SalePrice decimal.Decimal `json:"sale_price"`
}

// RecipeIngredient línea de receta en peticiones.
type RecipeIngredient struct {
	StockItemID  string          `json:"stock_item_id"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
}

// UpdateRecipeRequest reemplazo completo de la receta (PUT .../recipe).
type UpdateRecipeRequest struct {
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// CategoryRequest alta/edición de categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}
