// Package http expone el contrato HTTP del servidor stub sobre Fiber:
// las mismas rutas /api/v1 que la API real, respaldadas por el almacén en
// memoria. Los errores viajan como {"detail": "..."}.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
)

// fail traduce un error de dominio al par estado + envelope {"detail"}.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientStock):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.ErrorResponse{Detail: err.Error()})
}

// badRequest respuesta 400 con detail libre (validaciones de handler).
func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: detail})
}
