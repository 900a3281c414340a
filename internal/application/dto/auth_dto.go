package dto

// LoginRequest credenciales para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta del login: solo el token; el perfil se obtiene
// después con GET /auth/me (por eso la sesión necesita SetToken separado
// de SetAuth).
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// RegisterRequest alta de usuario para POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// AssignCafeRequest asignación usuario↔café para POST/DELETE /admin/assign-cafe.
type AssignCafeRequest struct {
	UserID string `json:"user_id"`
	CafeID string `json:"cafe_id"`
}

// CreateUserRequest alta administrativa para POST /admin/users.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}
