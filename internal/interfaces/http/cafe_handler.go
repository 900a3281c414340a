package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// CafeHandler rutas /cafes de primer nivel: los cafés del usuario.
type CafeHandler struct {
	store *memory.Store
}

// NewCafeHandler construye el handler de cafés.
func NewCafeHandler(store *memory.Store) *CafeHandler {
	return &CafeHandler{store: store}
}

// List cafés asignados al usuario autenticado; un admin ve todos
// (GET /cafes).
func (h *CafeHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.ListCafesFor(GetUserID(c)))
}

// Create alta de café; el creador queda asignado (POST /cafes).
func (h *CafeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCafeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	cafe := h.store.CreateCafe(GetUserID(c), in.Name, in.Address, in.CurrencySymbol)
	return c.Status(fiber.StatusCreated).JSON(cafe)
}
