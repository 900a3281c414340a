package api

import (
	"context"
	"net/url"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// DailyReport reporte financiero de un día (date en YYYY-MM-DD).
func (c *Client) DailyReport(ctx context.Context, cafeID, date string) (*entity.DailyReport, error) {
	var report entity.DailyReport
	q := url.Values{"date": {date}}
	if err := c.get(ctx, "/cafes/"+cafeID+"/reports/daily", q, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// MonthlyReport reporte financiero de un mes. El backend espera el primer
// día del mes: month en formato YYYY-MM-01.
func (c *Client) MonthlyReport(ctx context.Context, cafeID, month string) (*entity.MonthlyReport, error) {
	var report entity.MonthlyReport
	q := url.Values{"month": {month}}
	if err := c.get(ctx, "/cafes/"+cafeID+"/reports/monthly", q, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
