package api

import (
	"context"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// Login autentica y devuelve el access token. No toca la sesión: el flujo
// de login (SetToken → Me → SetAuth) lo orquesta el llamador porque el
// perfil solo puede pedirse con el token ya en su sitio.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp dto.LoginResponse
	err := c.post(ctx, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register da de alta un usuario nuevo.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*entity.User, error) {
	var user entity.User
	if err := c.post(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me devuelve el perfil del usuario autenticado.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
