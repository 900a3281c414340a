package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// ReportHandler rutas /cafes/:cafeID/reports.
type ReportHandler struct {
	store *memory.Store
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(store *memory.Store) *ReportHandler {
	return &ReportHandler{store: store}
}

// Daily reporte de un día; ?date=YYYY-MM-DD requerido
// (GET .../reports/daily).
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return badRequest(c, "date es requerido (YYYY-MM-DD)")
	}
	report, err := h.store.DailyReport(c.Params("cafeID"), date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}

// Monthly reporte de un mes con la serie diaria; ?month=YYYY-MM-01
// requerido (GET .../reports/monthly).
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return badRequest(c, "month es requerido (YYYY-MM-01)")
	}
	report, err := h.store.MonthlyReport(c.Params("cafeID"), month)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}
