package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// OrderHandler rutas /cafes/:cafeID/orders y /cafes/:cafeID/waste/menu.
type OrderHandler struct {
	store *memory.Store
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(store *memory.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// List pedidos del café; ?date=YYYY-MM-DD filtra por día (GET .../orders).
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.store.ListOrders(c.Params("cafeID"), c.Query("date"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

// Create registra la venta en una única llamada: snapshots de precio y
// costo, verificación y descuento de stock (POST .../orders).
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if len(in.Items) == 0 {
		return badRequest(c, "el pedido necesita al menos una línea")
	}
	order, err := h.store.CreateOrder(c.Params("cafeID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// Delete anula el pedido y repone el stock (DELETE .../orders/:orderID).
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteOrder(c.Params("cafeID"), c.Params("orderID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Merma de carta ────────────────────────────────────────────────────────────

// CreateMenuWaste merma de producto terminado (POST .../waste/menu).
func (h *OrderHandler) CreateMenuWaste(c *fiber.Ctx) error {
	var in dto.MenuWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	rec, err := h.store.RecordMenuWaste(c.Params("cafeID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// MenuWasteHistory historial de mermas de carta (GET .../waste/menu).
func (h *OrderHandler) MenuWasteHistory(c *fiber.Ctx) error {
	records, err := h.store.MenuWasteHistory(c.Params("cafeID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(records)
}
