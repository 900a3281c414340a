package api

import (
	"context"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ListCafes devuelve los cafés accesibles para el usuario autenticado.
func (c *Client) ListCafes(ctx context.Context) ([]entity.Cafe, error) {
	var cafes []entity.Cafe
	if err := c.get(ctx, "/cafes", nil, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

// CreateCafe crea un café propiedad del usuario autenticado.
func (c *Client) CreateCafe(ctx context.Context, req dto.CreateCafeRequest) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := c.post(ctx, "/cafes", req, &cafe); err != nil {
		return nil, err
	}
	return &cafe, nil
}

// ── Rutas de administración ───────────────────────────────────────────────────

// AdminListCafes lista todos los cafés del sistema (solo admin).
func (c *Client) AdminListCafes(ctx context.Context) ([]entity.Cafe, error) {
	var cafes []entity.Cafe
	if err := c.get(ctx, "/admin/cafes", nil, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

// AdminCreateCafe crea un café sin asignar (solo admin).
func (c *Client) AdminCreateCafe(ctx context.Context, req dto.CreateCafeRequest) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := c.post(ctx, "/admin/cafes", req, &cafe); err != nil {
		return nil, err
	}
	return &cafe, nil
}

// AdminListUsers lista todos los usuarios (solo admin).
func (c *Client) AdminListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminCreateUser da de alta un usuario (solo admin).
func (c *Client) AdminCreateUser(ctx context.Context, req dto.CreateUserRequest) (*entity.User, error) {
	var user entity.User
	if err := c.post(ctx, "/admin/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminCafeUsers lista los usuarios asignados a un café (solo admin).
func (c *Client) AdminCafeUsers(ctx context.Context, cafeID string) ([]entity.User, error) {
	var users []entity.User
	if err := c.get(ctx, "/admin/cafe/"+cafeID+"/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AssignCafe asigna un usuario a un café (solo admin).
func (c *Client) AssignCafe(ctx context.Context, userID, cafeID string) error {
	return c.post(ctx, "/admin/assign-cafe", dto.AssignCafeRequest{UserID: userID, CafeID: cafeID}, nil)
}

// UnassignCafe retira la asignación usuario↔café (solo admin).
func (c *Client) UnassignCafe(ctx context.Context, userID, cafeID string) error {
	return c.delete(ctx, "/admin/assign-cafe", dto.AssignCafeRequest{UserID: userID, CafeID: cafeID})
}
