// Package recipe calcula el costo de un producto de carta a partir de su
// receta y los costos unitarios del stock (servicio de dominio).
package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// IngredientCost costo de una línea de receta: cantidad usada × costo unitario.
func IngredientCost(line entity.RecipeLine, stock entity.StockItem) decimal.Decimal {
	return line.QuantityUsed.Mul(stock.CostPerUnit)
}

// MenuItemCost suma el costo de todas las líneas de la receta cuyo
// stock_item_id resuelve en el snapshot de stock dado. Una referencia que
// no resuelve (ingrediente borrado) aporta 0, nunca es un error.
func MenuItemCost(lines []entity.RecipeLine, stock []entity.StockItem) decimal.Decimal {
	costs := make(map[string]decimal.Decimal, len(stock))
	for _, s := range stock {
		costs[s.ID] = s.CostPerUnit
	}
	total := decimal.Zero
	for _, l := range lines {
		unitCost, ok := costs[l.StockItemID]
		if !ok {
			continue
		}
		total = total.Add(l.QuantityUsed.Mul(unitCost))
	}
	return total
}

// Margin margen porcentual: ((precio − costo) / precio) × 100 cuando el
// costo es > 0; si el costo es 0 o desconocido (sin receta) devuelve 0.
// Este mapeo "sin receta ⇒ margen 0" se conserva tal cual del cliente
// original; la UI siempre debe poder pintar un número.
func Margin(salePrice, cost decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) || salePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return salePrice.Sub(cost).Div(salePrice).Mul(hundred)
}
