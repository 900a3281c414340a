package pos

import (
	"context"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/application/query"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// OrderCreator puerto de salida hacia la API de pedidos. La implementación
// concreta es el gateway HTTP; para tests se inyecta un mock.
type OrderCreator interface {
	CreateOrder(ctx context.Context, cafeID string, req dto.CreateOrderRequest) (*entity.Order, error)
}

// Invalidator puerto hacia la caché de consultas: tras un checkout exitoso
// hay que invalidar pedidos y stock (la venta decrementa inventario en el
// servidor).
type Invalidator interface {
	Invalidate(prefix query.Key)
}
