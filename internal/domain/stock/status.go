// Package stock deriva el estado de reposición de los ítems de inventario.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// Status estado de reposición derivado de un StockItem.
type Status string

const (
	StatusCritical Status = "critical" // cantidad <= umbral
	StatusLow      Status = "low"      // cantidad <= 1.5 × umbral
	StatusOK       Status = "ok"
)

// lowFactor multiplica el umbral para la banda de aviso temprano.
var lowFactor = decimal.NewFromFloat(1.5)

// StatusOf clasifica un ítem según su umbral de stock bajo.
func StatusOf(item entity.StockItem) Status {
	if item.CurrentQuantity.LessThanOrEqual(item.LowStockThreshold) {
		return StatusCritical
	}
	if item.CurrentQuantity.LessThanOrEqual(item.LowStockThreshold.Mul(lowFactor)) {
		return StatusLow
	}
	return StatusOK
}

// FilterBelowOK devuelve los ítems que requieren atención (low o critical),
// para el widget de alertas de reposición.
func FilterBelowOK(items []entity.StockItem) []entity.StockItem {
	var out []entity.StockItem
	for _, it := range items {
		if StatusOf(it) != StatusOK {
			out = append(out, it)
		}
	}
	return out
}
