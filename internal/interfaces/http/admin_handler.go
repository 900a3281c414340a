package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// AdminHandler rutas /admin: gestión global de cafés, usuarios y
// asignaciones. Todas requieren rol de administrador.
type AdminHandler struct {
	store *memory.Store
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(store *memory.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ListCafes todos los cafés del sistema (GET /admin/cafes).
func (h *AdminHandler) ListCafes(c *fiber.Ctx) error {
	return c.JSON(h.store.ListAllCafes())
}

// CreateCafe alta de café sin asignar dueño (POST /admin/cafes).
func (h *AdminHandler) CreateCafe(c *fiber.Ctx) error {
	var in dto.CreateCafeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	cafe := h.store.CreateCafe("", in.Name, in.Address, in.CurrencySymbol)
	return c.Status(fiber.StatusCreated).JSON(cafe)
}

// ListUsers todos los usuarios (GET /admin/users).
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	return c.JSON(h.store.ListUsers())
}

// CreateUser alta administrativa, admite is_admin (POST /admin/users).
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email y password son requeridos")
	}
	user, err := h.store.CreateUser(in.Email, in.Password, in.FullName, in.IsAdmin)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// CafeUsers usuarios asignados a un café (GET /admin/cafe/:cafeID/users).
func (h *AdminHandler) CafeUsers(c *fiber.Ctx) error {
	users, err := h.store.CafeUsers(c.Params("cafeID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// AssignCafe vincula usuario↔café (POST /admin/assign-cafe).
func (h *AdminHandler) AssignCafe(c *fiber.Ctx) error {
	var in dto.AssignCafeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.store.AssignCafe(in.UserID, in.CafeID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnassignCafe rompe el vínculo usuario↔café (DELETE /admin/assign-cafe,
// con cuerpo JSON).
func (h *AdminHandler) UnassignCafe(c *fiber.Ctx) error {
	var in dto.AssignCafeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.store.UnassignCafe(in.UserID, in.CafeID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
