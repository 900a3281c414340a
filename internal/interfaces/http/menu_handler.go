package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// MenuHandler rutas /cafes/:cafeID/menu y /cafes/:cafeID/categories.
type MenuHandler struct {
	store *memory.Store
}

// NewMenuHandler construye el handler de carta.
func NewMenuHandler(store *memory.Store) *MenuHandler {
	return &MenuHandler{store: store}
}

// ── Carta ─────────────────────────────────────────────────────────────────────

// List carta del café (GET .../menu).
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.store.ListMenu(c.Params("cafeID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// Create alta de producto (POST .../menu).
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	if !in.SalePrice.IsPositive() {
		return badRequest(c, "sale_price debe ser mayor que 0")
	}
	item, err := h.store.CreateMenuItem(c.Params("cafeID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update edición completa del producto (PUT .../menu/:itemID).
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, err := h.store.UpdateMenuItem(c.Params("cafeID"), c.Params("itemID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// UpdatePrice cambio de precio (PUT .../menu/:itemID/price).
func (h *MenuHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, err := h.store.UpdateMenuPrice(c.Params("cafeID"), c.Params("itemID"), in.SalePrice)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// Delete borrado del producto y su receta (DELETE .../menu/:itemID).
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteMenuItem(c.Params("cafeID"), c.Params("itemID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// GetRecipe receta del producto (GET .../menu/:itemID/recipe).
func (h *MenuHandler) GetRecipe(c *fiber.Ctx) error {
	lines, err := h.store.GetRecipe(c.Params("cafeID"), c.Params("itemID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(lines)
}

// ReplaceRecipe reemplazo completo de la receta (PUT .../menu/:itemID/recipe).
func (h *MenuHandler) ReplaceRecipe(c *fiber.Ctx) error {
	var in dto.UpdateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	lines, err := h.store.ReplaceRecipe(c.Params("cafeID"), c.Params("itemID"), in.Ingredients)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(lines)
}

// AddIngredient añade una línea a la receta (POST .../menu/:itemID/recipe).
func (h *MenuHandler) AddIngredient(c *fiber.Ctx) error {
	var in dto.RecipeIngredient
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	line, err := h.store.AddRecipeIngredient(c.Params("cafeID"), c.Params("itemID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// DeleteIngredient borra una línea de la receta
// (DELETE .../menu/:itemID/recipe/:lineID).
func (h *MenuHandler) DeleteIngredient(c *fiber.Ctx) error {
	if err := h.store.DeleteRecipeIngredient(c.Params("cafeID"), c.Params("itemID"), c.Params("lineID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories categorías del café (GET .../categories).
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.store.ListCategories(c.Params("cafeID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cats)
}

// CreateCategory alta de categoría; 409 si el nombre ya existe
// (POST .../categories).
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	cat, err := h.store.CreateCategory(c.Params("cafeID"), in.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// UpdateCategory renombrado (PUT .../categories/:categoryID).
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	cat, err := h.store.UpdateCategory(c.Params("cafeID"), c.Params("categoryID"), in.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cat)
}

// DeleteCategory borrado; los productos quedan sin categoría
// (DELETE .../categories/:categoryID).
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.store.DeleteCategory(c.Params("cafeID"), c.Params("categoryID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
