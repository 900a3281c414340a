package http_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

func TestZZDebugStoreDirect(t *testing.T) {
	s := memory.NewStore()
	cafe := s.CreateCafe("", "Café", "", "DH")

	milk, err := s.CreateStockItem(cafe.ID, dto.StockItemRequest{
		Name: "Leche", UnitOfMeasure: "L",
		CurrentQuantity:   decimal.NewFromInt(10),
		CostPerUnit:       decimal.NewFromInt(5),
		LowStockThreshold: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	latte, err := s.CreateMenuItem(cafe.ID, dto.MenuItemRequest{
		Name: "Latte", SalePrice: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	lines, err := s.ReplaceRecipe(cafe.ID, latte.ID, []dto.RecipeIngredient{
		{StockItemID: milk.ID, QuantityUsed: decimal.NewFromFloat(0.2)},
	})
	require.NoError(t, err)
	t.Logf("recipe lines=%d key itemID=%s", len(lines), latte.ID)

	order, err := s.CreateOrder(cafe.ID, dto.CreateOrderRequest{
		Items: []dto.OrderLine{{MenuItemID: latte.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	t.Logf("revenue=%s cost=%s", order.TotalRevenue, order.TotalCost)

	stock, err := s.ListStock(cafe.ID)
	require.NoError(t, err)
	t.Logf("stock current=%s", stock[0].CurrentQuantity)
}
