// Package pdf implementa la exportación del reporte financiero diario a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del café  │  "Reporte diario" + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Ganancia bruta / Ganancia neta          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COSTOS: Salarios | Gastos diarios | Mensuales prorrateados  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Productos más vendidos (Cant | Producto | Ingresos)  │
//	│  TABLA: Ventas por empleado (Pedidos | Nombre | Ingresos)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/domain/finance"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 66, Blue: 18}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator exporta reportes diarios con Maroto v2.
type ReportPDFGenerator struct{}

// NewReportPDFGenerator construye el generador.
func NewReportPDFGenerator() *ReportPDFGenerator { return &ReportPDFGenerator{} }

// GenerateDailyReportPDF genera el PDF del reporte diario y devuelve sus
// bytes. topItems y staff pueden ir vacíos (día sin ventas).
func (g *ReportPDFGenerator) GenerateDailyReportPDF(
	_ context.Context,
	cafeName string,
	report *entity.DailyReport,
	topItems []finance.ItemSales,
	staff []finance.StaffSales,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte diario "+report.Date, true).
		WithAuthor(cafeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cafeName, report.Date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(costsRows(report.Costs)...)

	if len(topItems) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow("PRODUCTOS MÁS VENDIDOS"))
		m.AddRows(itemsHeaderRow())
		m.AddRows(itemsRows(topItems)...)
	}

	if len(staff) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow("VENTAS POR EMPLEADO"))
		m.AddRows(staffHeaderRow())
		m.AddRows(staffRows(staff)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del café (izq) y título + fecha (der).
func headerRow(cafeName, date string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(cafeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE FINANCIERO DIARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+date, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: las tres cifras principales del día. El neto se recalcula en
// cliente (report.Net) para que siempre cierre contra los costos mostrados.
func summaryRow(report *entity.DailyReport) core.Row {
	net := report.Net()
	netColor := colorPrimary
	if net.IsNegative() {
		netColor = colorRed
	}

	metric := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: c, Top: 8,
			}),
		)
	}

	return row.New(18).Add(
		metric("Ingresos", money(report.TotalRevenue), colorPrimary),
		metric("Ganancia bruta", money(report.GrossProfit), colorPrimary),
		metric("Ganancia neta", money(net), netColor),
	)
}

// costsRows: desglose de costos con el total al pie.
func costsRows(costs entity.ReportCosts) []core.Row {
	item := func(label string, v decimal.Decimal, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{
				Size: 9, Style: style, Top: 1, Left: 2,
			})),
			col.New(6).Add(text.New(money(v), props.Text{
				Size: 9, Style: style, Align: align.Right, Top: 1, Right: 2,
			})),
		)
	}

	return []core.Row{
		sectionRow("DESGLOSE DE COSTOS"),
		item("Salarios", costs.Salaries, false),
		item("Gastos diarios", costs.DailyExpenses, false),
		item("Gastos mensuales prorrateados", costs.ProRatedMonthlyExpenses, false),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		item("Total de costos", costs.TotalCosts, true),
	}
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func itemsHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeader("Cant.", 2, align.Center),
		tableHeader("Producto", 7, align.Left),
		tableHeader("Ingresos", 3, align.Right),
	)
}

func itemsRows(items []finance.ItemSales) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(7).Add(text.New(it.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(money(it.Revenue), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

func staffHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeader("Pedidos", 2, align.Center),
		tableHeader("Empleado", 7, align.Left),
		tableHeader("Ingresos", 3, align.Right),
	)
}

func staffRows(staff []finance.StaffSales) []core.Row {
	rows := make([]core.Row, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Orders), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(7).Add(text.New(s.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(money(s.Revenue), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorGray, Top: 1, Left: 1, Right: 1,
	}))
}

// money formatea un importe con dos decimales y el símbolo de dirham.
func money(v decimal.Decimal) string {
	return v.StringFixed(2) + " DH"
}
