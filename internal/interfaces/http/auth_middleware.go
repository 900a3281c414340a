package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/pkg/jwt"
)

// Locals keys cargadas por AuthMiddleware.
const (
	LocalUserID  = "user_id"
	LocalEmail   = "email"
	LocalIsAdmin = "is_admin"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalIsAdmin, claims.IsAdmin)
		return c.Next()
	}
}

// RequireAdmin corta con 403 si el token no es de un administrador.
// Debe ir después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Detail: "se requiere rol de administrador"})
		}
		return c.Next()
	}
}

// CafeAccess corta con 403 si el usuario no está asignado al café de la
// ruta (:cafeID). Los admin pasan siempre.
func CafeAccess(checker interface {
	HasAccess(userID, cafeID string) bool
}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IsAdmin(c) {
			return c.Next()
		}
		if !checker.HasAccess(GetUserID(c), c.Params("cafeID")) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Detail: "sin acceso a este café"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsAdmin indica si el token del contexto pertenece a un administrador.
func IsAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalIsAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
