package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// StockHandler rutas /cafes/:cafeID/stock.
type StockHandler struct {
	store *memory.Store
}

// NewStockHandler construye el handler de inventario.
func NewStockHandler(store *memory.Store) *StockHandler {
	return &StockHandler{store: store}
}

// List inventario del café (GET .../stock).
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.store.ListStock(c.Params("cafeID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// Create alta de materia prima (POST .../stock).
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" || in.UnitOfMeasure == "" {
		return badRequest(c, "name y unit_of_measure son requeridos")
	}
	item, err := h.store.CreateStockItem(c.Params("cafeID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update edición completa del ítem (PUT .../stock/:itemID).
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, err := h.store.UpdateStockItem(c.Params("cafeID"), c.Params("itemID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// UpdateCost cambio de costo unitario (PUT .../stock/:itemID/cost).
func (h *StockHandler) UpdateCost(c *fiber.Ctx) error {
	var in dto.UpdateCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, err := h.store.UpdateStockCost(c.Params("cafeID"), c.Params("itemID"), in.CostPerUnit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// Restock entrada de stock (POST .../stock/:itemID/restock).
func (h *StockHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, err := h.store.Restock(c.Params("cafeID"), c.Params("itemID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// Waste merma de materia prima (POST .../stock/:itemID/waste).
func (h *StockHandler) Waste(c *fiber.Ctx) error {
	var in dto.StockWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	item, err := h.store.RecordStockWaste(c.Params("cafeID"), c.Params("itemID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// ItemHistory movimientos de un ítem (GET .../stock/:itemID/history).
func (h *StockHandler) ItemHistory(c *fiber.Ctx) error {
	moves, err := h.store.StockItemHistory(c.Params("cafeID"), c.Params("itemID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(moves)
}

// History movimientos de todo el café (GET .../stock/history).
func (h *StockHandler) History(c *fiber.Ctx) error {
	moves, err := h.store.StockHistory(c.Params("cafeID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(moves)
}

// Delete borrado del ítem; 409 si alguna receta lo usa
// (DELETE .../stock/:itemID).
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteStockItem(c.Params("cafeID"), c.Params("itemID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
