package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ListMenu carta completa del café.
func (c *Client) ListMenu(ctx context.Context, cafeID string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := c.get(ctx, "/cafes/"+cafeID+"/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenuItem da de alta un producto de carta.
func (c *Client) CreateMenuItem(ctx context.Context, cafeID string, req dto.MenuItemRequest) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := c.post(ctx, "/cafes/"+cafeID+"/menu", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem edita un producto de carta.
func (c *Client) UpdateMenuItem(ctx context.Context, cafeID, itemID string, req dto.MenuItemRequest) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := c.put(ctx, "/cafes/"+cafeID+"/menu/"+itemID, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMenuPrice cambia solo el precio de venta.
func (c *Client) UpdateMenuPrice(ctx context.Context, cafeID, itemID string, price decimal.Decimal) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := c.put(ctx, "/cafes/"+cafeID+"/menu/"+itemID+"/price", dto.UpdatePriceRequest{SalePrice: price}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMenuItem elimina un producto de carta.
func (c *Client) DeleteMenuItem(ctx context.Context, cafeID, itemID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/menu/"+itemID, nil)
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// GetRecipe receta (líneas de ingredientes) de un producto.
func (c *Client) GetRecipe(ctx context.Context, cafeID, itemID string) ([]entity.RecipeLine, error) {
	var lines []entity.RecipeLine
	if err := c.get(ctx, "/cafes/"+cafeID+"/menu/"+itemID+"/recipe", nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateRecipe reemplaza la receta completa.
func (c *Client) UpdateRecipe(ctx context.Context, cafeID, itemID string, ingredients []dto.RecipeIngredient) ([]entity.RecipeLine, error) {
	var lines []entity.RecipeLine
	err := c.put(ctx, "/cafes/"+cafeID+"/menu/"+itemID+"/recipe", dto.UpdateRecipeRequest{Ingredients: ingredients}, &lines)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AddRecipeIngredient añade una línea a la receta.
func (c *Client) AddRecipeIngredient(ctx context.Context, cafeID, itemID string, ing dto.RecipeIngredient) (*entity.RecipeLine, error) {
	var line entity.RecipeLine
	if err := c.post(ctx, "/cafes/"+cafeID+"/menu/"+itemID+"/recipe", ing, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

// DeleteRecipeIngredient elimina una línea de la receta.
func (c *Client) DeleteRecipeIngredient(ctx context.Context, cafeID, itemID, recipeID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/menu/"+itemID+"/recipe/"+recipeID, nil)
}

// ── Imagen del producto ───────────────────────────────────────────────────────

// ReplaceMenuImage sube la imagen nueva y luego intenta borrar la anterior.
// El borrado de la imagen vieja es best-effort deliberado: si falla se
// loggea y se continúa — nunca bloquea el reemplazo.
func (c *Client) ReplaceMenuImage(ctx context.Context, item *entity.MenuItem, filename string, data []byte) (string, error) {
	uploaded, err := c.UploadFile(ctx, filename, data)
	if err != nil {
		return "", err
	}
	if old := item.ImageURL; old != "" {
		if err := c.DeleteFile(ctx, old); err != nil {
			c.log.Warn().Err(err).Str("filename", old).
				Msg("api: no se pudo borrar la imagen anterior; se ignora")
		}
	}
	return uploaded.URL, nil
}
