package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/domain/finance"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/pdf"
)

func sampleReport() *entity.DailyReport {
	return &entity.DailyReport{
		Date:         "2026-08-28",
		TotalRevenue: decimal.NewFromInt(1250),
		Costs: entity.ReportCosts{
			Salaries:                decimal.NewFromInt(400),
			DailyExpenses:           decimal.NewFromInt(120),
			ProRatedMonthlyExpenses: decimal.NewFromFloat(96.77),
			TotalCosts:              decimal.NewFromFloat(616.77),
		},
		GrossProfit: decimal.NewFromInt(800),
		NetProfit:   decimal.NewFromFloat(633.23),
	}
}

func TestGenerateDailyReportPDF(t *testing.T) {
	g := pdf.NewReportPDFGenerator()

	data, err := g.GenerateDailyReportPDF(context.Background(), "Café Central", sampleReport(),
		[]finance.ItemSales{
			{Name: "Espresso", Quantity: 42, Revenue: decimal.NewFromInt(420)},
			{Name: "Croissant", Quantity: 18, Revenue: decimal.NewFromInt(270)},
		},
		[]finance.StaffSales{
			{Name: "Sara", Orders: 30, Revenue: decimal.NewFromInt(800)},
			{Name: "Karim", Orders: 15, Revenue: decimal.NewFromInt(450)},
		},
	)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "el resultado debe ser un PDF válido")
}

// Un día sin ventas genera igualmente el PDF con solo el resumen y costos.
func TestGenerateDailyReportPDF_SinVentas(t *testing.T) {
	g := pdf.NewReportPDFGenerator()

	data, err := g.GenerateDailyReportPDF(context.Background(), "Café Central", sampleReport(), nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
