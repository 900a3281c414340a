package entity

import "github.com/shopspring/decimal"

// ReportCosts desglose de costos de un reporte.
// TotalCosts lo calcula el servidor; el cliente lo contrasta con la suma
// de los buckets (ver finance.CostBreakdownTotal) solo como verificación.
type ReportCosts struct {
	Salaries                decimal.Decimal `json:"salaries"`
	DailyExpenses           decimal.Decimal `json:"daily_expenses"`
	ProRatedMonthlyExpenses decimal.Decimal `json:"pro_rated_monthly_expenses"`
	TotalCosts              decimal.Decimal `json:"total_costs"`
}

// DailyReport resumen financiero de un día.
// Invariante: NetProfit = TotalRevenue - Costs.TotalCosts (el cliente lo
// recalcula para mostrar siempre un valor consistente).
type DailyReport struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Costs        ReportCosts     `json:"costs"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

// DailyReportSummary punto por día dentro del reporte mensual (para gráficas).
type DailyReportSummary struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// MonthlyReport resumen financiero de un mes con la serie diaria.
type MonthlyReport struct {
	Month        string               `json:"month"` // YYYY-MM-01
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
	Costs        ReportCosts          `json:"costs"`
	GrossProfit  decimal.Decimal      `json:"gross_profit"`
	NetProfit    decimal.Decimal      `json:"net_profit"`
	DailyReports []DailyReportSummary `json:"daily_reports,omitempty"`
}

// Net devuelve el neto recalculado en cliente: ingresos - costos totales.
func (r DailyReport) Net() decimal.Decimal {
	return r.TotalRevenue.Sub(r.Costs.TotalCosts)
}

// Net devuelve el neto recalculado en cliente: ingresos - costos totales.
func (r MonthlyReport) Net() decimal.Decimal {
	return r.TotalRevenue.Sub(r.Costs.TotalCosts)
}
