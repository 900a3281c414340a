package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// DailyReport reporte financiero de un día (YYYY-MM-DD).
//
// Modelo de costos: salarios = Σ salario diario vigente de cada empleado en
// esa fecha (último registro del historial con start_date <= fecha); gastos
// diarios del día; gastos mensuales prorrateados = monto / días del mes.
// La ganancia bruta descuenta solo el costo de receta de lo vendido; la
// neta descuenta los costos operativos.
func (s *Store) DailyReport(cafeID, date string) (*entity.DailyReport, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	report := s.dailyReport(cafeID, day)
	return &report, nil
}

// MonthlyReport reporte de un mes (YYYY-MM-01) con la serie diaria para
// gráficas. Los buckets de costos son la suma de los diarios, así el
// prorrateo mensual cierra contra el monto completo del mes.
func (s *Store) MonthlyReport(cafeID, month string) (*entity.MonthlyReport, error) {
	first, err := time.Parse("2006-01-02", month)
	if err != nil || first.Day() != 1 {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}

	report := entity.MonthlyReport{Month: month}
	days := daysInMonth(first)
	for d := 1; d <= days; d++ {
		day := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
		daily := s.dailyReport(cafeID, day)

		report.TotalRevenue = report.TotalRevenue.Add(daily.TotalRevenue)
		report.GrossProfit = report.GrossProfit.Add(daily.GrossProfit)
		report.Costs.Salaries = report.Costs.Salaries.Add(daily.Costs.Salaries)
		report.Costs.DailyExpenses = report.Costs.DailyExpenses.Add(daily.Costs.DailyExpenses)
		report.Costs.ProRatedMonthlyExpenses = report.Costs.ProRatedMonthlyExpenses.Add(daily.Costs.ProRatedMonthlyExpenses)
		report.Costs.TotalCosts = report.Costs.TotalCosts.Add(daily.Costs.TotalCosts)
		report.DailyReports = append(report.DailyReports, entity.DailyReportSummary{
			Date:    daily.Date,
			Revenue: daily.TotalRevenue,
			Profit:  daily.NetProfit,
		})
	}
	report.NetProfit = report.TotalRevenue.Sub(report.Costs.TotalCosts)
	return &report, nil
}

// dailyReport se llama con el mutex tomado.
func (s *Store) dailyReport(cafeID string, day time.Time) entity.DailyReport {
	date := day.Format("2006-01-02")
	report := entity.DailyReport{Date: date}

	var cogs decimal.Decimal
	for _, o := range s.orders[cafeID] {
		if o.Timestamp.Format("2006-01-02") != date {
			continue
		}
		report.TotalRevenue = report.TotalRevenue.Add(o.TotalRevenue)
		cogs = cogs.Add(o.TotalCost)
	}

	for _, st := range s.staff[cafeID] {
		report.Costs.Salaries = report.Costs.Salaries.Add(s.effectiveSalary(st.ID, date))
	}
	for _, e := range s.daily[cafeID] {
		if e.Date == date {
			report.Costs.DailyExpenses = report.Costs.DailyExpenses.Add(e.Amount)
		}
	}

	month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	days := decimal.NewFromInt(int64(daysInMonth(day)))
	for _, e := range s.monthly[cafeID] {
		// Month vacío = gasto recurrente que aplica a todos los meses
		if e.Month == "" || e.Month == month {
			report.Costs.ProRatedMonthlyExpenses = report.Costs.ProRatedMonthlyExpenses.Add(e.Amount.Div(days))
		}
	}

	report.Costs.TotalCosts = report.Costs.Salaries.
		Add(report.Costs.DailyExpenses).
		Add(report.Costs.ProRatedMonthlyExpenses)
	report.GrossProfit = report.TotalRevenue.Sub(cogs)
	report.NetProfit = report.TotalRevenue.Sub(report.Costs.TotalCosts)
	return report
}

// effectiveSalary salario vigente en una fecha: el registro más reciente
// con start_date <= fecha; 0 si el empleado aún no existía.
// Se llama con el mutex tomado.
func (s *Store) effectiveSalary(staffID, date string) decimal.Decimal {
	best := decimal.Zero
	bestDate := ""
	for _, r := range s.salaries[staffID] {
		if r.StartDate <= date && r.StartDate >= bestDate {
			best = r.DailySalary
			bestDate = r.StartDate
		}
	}
	return best
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
