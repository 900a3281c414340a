package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/domain/finance"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// ProfitMargin
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitMargin_IngresosCeroDevuelveCero(t *testing.T) {
	// División por cero jamás debe propagarse como NaN/Inf
	m := finance.ProfitMargin(decimal.Zero, decimal.Zero)
	assert.True(t, m.IsZero(), "margen con ingresos 0 debe ser 0")

	m = finance.ProfitMargin(d("50"), d("-10"))
	assert.True(t, m.IsZero(), "ingresos negativos también degradan a 0")
}

func TestProfitMargin_CasoNominal(t *testing.T) {
	m := finance.ProfitMargin(d("50"), d("200"))
	assert.True(t, d("25").Equal(m), "50/200 × 100 = 25%%, obtenido %s", m)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desglose de costos
// ──────────────────────────────────────────────────────────────────────────────

func TestCostBreakdown_SumaYVerificacionCruzada(t *testing.T) {
	costs := entity.ReportCosts{
		Salaries:                d("300"),
		DailyExpenses:           d("45.50"),
		ProRatedMonthlyExpenses: d("33.33"),
		TotalCosts:              d("378.83"),
	}
	sum := finance.CostBreakdownTotal(costs)
	assert.True(t, d("378.83").Equal(sum))
	assert.True(t, finance.BreakdownMatches(costs, d("0.01")))

	// El prorrateo del servidor puede diferir por centavos: dentro de la
	// tolerancia sigue siendo un desglose válido.
	costs.TotalCosts = d("378.84")
	assert.True(t, finance.BreakdownMatches(costs, d("0.01")))
	costs.TotalCosts = d("380")
	assert.False(t, finance.BreakdownMatches(costs, d("0.01")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateOrders_ListaVaciaDevuelveCeros(t *testing.T) {
	s := finance.AggregateOrders(nil)
	assert.True(t, s.Revenue.IsZero())
	assert.True(t, s.Cost.IsZero())
	assert.True(t, s.Profit.IsZero())
}

func TestAggregateOrders_SumaIngresosCostosYBeneficio(t *testing.T) {
	orders := []entity.Order{
		{TotalRevenue: d("100"), TotalCost: d("40")},
		{TotalRevenue: d("50.25"), TotalCost: d("20")},
	}
	s := finance.AggregateOrders(orders)
	assert.True(t, d("150.25").Equal(s.Revenue))
	assert.True(t, d("60").Equal(s.Cost))
	assert.True(t, d("90.25").Equal(s.Profit))
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupaciones
// ──────────────────────────────────────────────────────────────────────────────

func at(hour int) time.Time {
	return time.Date(2026, 8, 28, hour, 15, 0, 0, time.UTC)
}

func TestGroupByHour_DistribucionHoraria(t *testing.T) {
	orders := []entity.Order{
		{Timestamp: at(8)}, {Timestamp: at(8)}, {Timestamp: at(17)},
	}
	byHour := finance.GroupByHour(orders)
	assert.Equal(t, 2, byHour[8])
	assert.Equal(t, 1, byHour[17])
	assert.Equal(t, 0, byHour[12])
}

// A(10) + B(30) + A(5) ⇒ {A:15, B:30} ordenado
// descendente por ingresos como [B(30), A(15)].
func TestStaffPerformance_AgrupaYOrdenaPorIngresos(t *testing.T) {
	orders := []entity.Order{
		{StaffName: "A", TotalRevenue: d("10")},
		{StaffName: "B", TotalRevenue: d("30")},
		{StaffName: "A", TotalRevenue: d("5")},
	}
	ranking := finance.StaffPerformance(orders)
	require.Len(t, ranking, 2)

	assert.Equal(t, "B", ranking[0].Name)
	assert.True(t, d("30").Equal(ranking[0].Revenue))
	assert.Equal(t, 1, ranking[0].Orders)

	assert.Equal(t, "A", ranking[1].Name)
	assert.True(t, d("15").Equal(ranking[1].Revenue))
	assert.Equal(t, 2, ranking[1].Orders)
}

func TestStaffPerformance_EmpatesConservanOrdenDeAparicion(t *testing.T) {
	orders := []entity.Order{
		{StaffName: "Zaid", TotalRevenue: d("20")},
		{StaffName: "Amal", TotalRevenue: d("20")},
	}
	ranking := finance.StaffPerformance(orders)
	require.Len(t, ranking, 2)
	assert.Equal(t, "Zaid", ranking[0].Name, "a igual ingreso gana el primero en aparecer")
	assert.Equal(t, "Amal", ranking[1].Name)
}

func TestTopItems_OrdenaPorCantidadConEmpatesEstables(t *testing.T) {
	orders := []entity.Order{
		{Items: []entity.OrderItem{
			{MenuItemName: "Espresso", Quantity: 2, PriceAtSale: d("10")},
			{MenuItemName: "Latte", Quantity: 1, PriceAtSale: d("12.50")},
		}},
		{Items: []entity.OrderItem{
			{MenuItemName: "Croissant", Quantity: 1, PriceAtSale: d("5")},
			{MenuItemName: "Espresso", Quantity: 1, PriceAtSale: d("10")},
		}},
	}
	top := finance.TopItems(orders, 2)
	require.Len(t, top, 2)

	assert.Equal(t, "Espresso", top[0].Name)
	assert.Equal(t, 3, top[0].Quantity)
	assert.True(t, d("30").Equal(top[0].Revenue))

	// Latte y Croissant empatan a 1; Latte apareció primero
	assert.Equal(t, "Latte", top[1].Name)
}

func TestTopItems_SinPedidosDevuelveVacio(t *testing.T) {
	assert.Empty(t, finance.TopItems(nil, 5))
}
