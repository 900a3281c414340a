package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
	"github.com/jhoicas/Cafeteria-client/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens del stub.
type JWTConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	store *memory.Store
	jwt   JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(store *memory.Store, cfg JWTConfig) *AuthHandler {
	return &AuthHandler{store: store, jwt: cfg}
}

// Register alta de usuario (POST /auth/register).
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email y password son requeridos")
	}
	if len(in.Password) < 8 {
		return badRequest(c, "password debe tener al menos 8 caracteres")
	}
	user, err := h.store.CreateUser(in.Email, in.Password, in.FullName, false)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login valida credenciales y emite el token (POST /auth/login).
// Solo devuelve el token; el perfil se pide después con GET /auth/me.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email y password son requeridos")
	}
	user, err := h.store.Authenticate(in.Email, in.Password)
	if err != nil {
		return fail(c, err)
	}
	token, err := jwt.Generate(h.jwt.Secret, user.ID, user.Email, user.IsAdmin, h.jwt.Issuer, h.jwt.ExpMinutes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.LoginResponse{AccessToken: token, TokenType: "bearer"})
}

// Me perfil del usuario autenticado (GET /auth/me).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.store.GetUser(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
