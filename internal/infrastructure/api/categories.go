package api

import (
	"context"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ListCategories categorías de carta del café.
func (c *Client) ListCategories(ctx context.Context, cafeID string) ([]entity.Category, error) {
	var cats []entity.Category
	if err := c.get(ctx, "/cafes/"+cafeID+"/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory crea una categoría.
func (c *Client) CreateCategory(ctx context.Context, cafeID, name string) (*entity.Category, error) {
	var cat entity.Category
	if err := c.post(ctx, "/cafes/"+cafeID+"/categories", dto.CategoryRequest{Name: name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory renombra una categoría.
func (c *Client) UpdateCategory(ctx context.Context, cafeID, categoryID, name string) (*entity.Category, error) {
	var cat entity.Category
	err := c.put(ctx, "/cafes/"+cafeID+"/categories/"+categoryID, dto.CategoryRequest{Name: name}, &cat)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory elimina una categoría.
func (c *Client) DeleteCategory(ctx context.Context, cafeID, categoryID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/categories/"+categoryID, nil)
}
