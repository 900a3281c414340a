package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/domain/stock"
)

func item(qty, threshold string) entity.StockItem {
	return entity.StockItem{
		CurrentQuantity:   decimal.RequireFromString(qty),
		LowStockThreshold: decimal.RequireFromString(threshold),
	}
}

func TestStatusOf_Bandas(t *testing.T) {
	cases := []struct {
		name      string
		qty       string
		threshold string
		want      stock.Status
	}{
		{"bajo el umbral", "3", "5", stock.StatusCritical},
		{"exactamente el umbral", "5", "5", stock.StatusCritical},
		{"dentro de la banda 1.5x", "7", "5", stock.StatusLow},
		{"exactamente 1.5x", "7.5", "5", stock.StatusLow},
		{"por encima de 1.5x", "8", "5", stock.StatusOK},
		{"umbral cero con stock", "1", "0", stock.StatusOK},
		{"umbral cero sin stock", "0", "0", stock.StatusCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.StatusOf(item(tc.qty, tc.threshold)))
		})
	}
}

func TestFilterBelowOK_SoloDevuelveLosQueRequierenAtencion(t *testing.T) {
	items := []entity.StockItem{
		{ID: "ok", CurrentQuantity: decimal.NewFromInt(100), LowStockThreshold: decimal.NewFromInt(5)},
		{ID: "low", CurrentQuantity: decimal.NewFromInt(7), LowStockThreshold: decimal.NewFromInt(5)},
		{ID: "crit", CurrentQuantity: decimal.NewFromInt(2), LowStockThreshold: decimal.NewFromInt(5)},
	}
	flagged := stock.FilterBelowOK(items)
	assert.Len(t, flagged, 2)
	assert.Equal(t, "low", flagged[0].ID)
	assert.Equal(t, "crit", flagged[1].ID)
}
