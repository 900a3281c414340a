package api

import (
	"context"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// RecordMenuWaste registra merma de producto terminado; el servidor
// descuenta del stock la receta completa multiplicada por la cantidad.
func (c *Client) RecordMenuWaste(ctx context.Context, cafeID string, req dto.MenuWasteRequest) (*entity.MenuWasteRecord, error) {
	var rec entity.MenuWasteRecord
	if err := c.post(ctx, "/cafes/"+cafeID+"/waste/menu", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// MenuWasteHistory historial de mermas de carta del café.
func (c *Client) MenuWasteHistory(ctx context.Context, cafeID string) ([]entity.MenuWasteRecord, error) {
	var records []entity.MenuWasteRecord
	if err := c.get(ctx, "/cafes/"+cafeID+"/waste/menu", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
