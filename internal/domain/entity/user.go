package entity

import "time"

// User usuario autenticado de la aplicación.
// A diferencia del resto de entidades, no está scoped a un café:
// la relación usuario↔café se administra vía /admin/assign-cafe.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Cafe unidad de negocio aislada (tenant). Todo el inventario, menú,
// personal y pedidos están scoped a un café.
type Cafe struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address,omitempty"`
	CurrencySymbol string    `json:"currency_symbol,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}
