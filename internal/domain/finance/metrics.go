// Package finance contiene los derivadores de métricas financieras:
// funciones puras y totales sobre reportes y pedidos ya descargados.
// Ningún caso borde (listas vacías, ingresos cero) produce error:
// siempre se degrada a un valor definido, normalmente 0.
package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ProfitMargin devuelve (neto / ingresos) × 100, o 0 si los ingresos no son
// positivos. Nunca propaga NaN/Inf al llamador.
func ProfitMargin(netProfit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return netProfit.Div(revenue).Mul(hundred)
}

// CostBreakdownTotal suma los buckets de costo nombrados del reporte.
// Se usa como verificación cruzada contra Costs.TotalCosts del servidor,
// no como fuente de verdad.
func CostBreakdownTotal(c entity.ReportCosts) decimal.Decimal {
	return c.Salaries.Add(c.DailyExpenses).Add(c.ProRatedMonthlyExpenses)
}

// BreakdownMatches reporta si la suma de buckets coincide con el total del
// servidor dentro de la tolerancia dada (redondeos de prorrateo).
func BreakdownMatches(c entity.ReportCosts, tolerance decimal.Decimal) bool {
	diff := CostBreakdownTotal(c).Sub(c.TotalCosts).Abs()
	return diff.LessThanOrEqual(tolerance)
}

// OrdersSummary agregado de una lista de pedidos.
type OrdersSummary struct {
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
}

// AggregateOrders suma ingresos y costos de los pedidos; la lista vacía
// produce (0, 0, 0).
func AggregateOrders(orders []entity.Order) OrdersSummary {
	s := OrdersSummary{Revenue: decimal.Zero, Cost: decimal.Zero, Profit: decimal.Zero}
	for _, o := range orders {
		s.Revenue = s.Revenue.Add(o.TotalRevenue)
		s.Cost = s.Cost.Add(o.TotalCost)
	}
	s.Profit = s.Revenue.Sub(s.Cost)
	return s
}

// GroupByHour cuenta pedidos por hora del día (0–23) para la gráfica de
// distribución horaria.
func GroupByHour(orders []entity.Order) [24]int {
	var byHour [24]int
	for _, o := range orders {
		byHour[o.Timestamp.Hour()]++
	}
	return byHour
}

// StaffSales rendimiento acumulado de un empleado.
type StaffSales struct {
	Name    string
	Orders  int
	Revenue decimal.Decimal
}

// StaffPerformance agrupa pedidos por nombre de empleado y ordena
// descendente por ingresos. Empates conservan el orden de primera aparición.
func StaffPerformance(orders []entity.Order) []StaffSales {
	index := make(map[string]int)
	var ranking []StaffSales
	for _, o := range orders {
		i, ok := index[o.StaffName]
		if !ok {
			i = len(ranking)
			index[o.StaffName] = i
			ranking = append(ranking, StaffSales{Name: o.StaffName, Revenue: decimal.Zero})
		}
		ranking[i].Orders++
		ranking[i].Revenue = ranking[i].Revenue.Add(o.TotalRevenue)
	}
	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Revenue.GreaterThan(ranking[b].Revenue)
	})
	return ranking
}

// ItemSales ventas acumuladas de un producto de carta.
type ItemSales struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// TopItems agrupa las líneas de los pedidos por nombre de producto y
// devuelve hasta n productos ordenados descendente por cantidad vendida.
// Empates conservan el orden de primera aparición. n <= 0 devuelve todos.
func TopItems(orders []entity.Order, n int) []ItemSales {
	index := make(map[string]int)
	var ranking []ItemSales
	for _, o := range orders {
		for _, it := range o.Items {
			i, ok := index[it.MenuItemName]
			if !ok {
				i = len(ranking)
				index[it.MenuItemName] = i
				ranking = append(ranking, ItemSales{Name: it.MenuItemName, Revenue: decimal.Zero})
			}
			ranking[i].Quantity += it.Quantity
			ranking[i].Revenue = ranking[i].Revenue.Add(
				it.PriceAtSale.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Quantity > ranking[b].Quantity
	})
	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}
