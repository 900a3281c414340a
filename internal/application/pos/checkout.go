// Package pos (capa de aplicación) orquesta el cierre del carrito:
// convertirlo en un pedido, enviarlo a la API y emitir la invalidación.
package pos

import (
	"context"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/application/query"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	dompos "github.com/jhoicas/Cafeteria-client/internal/domain/pos"
	"github.com/jhoicas/Cafeteria-client/pkg/logger"
)

// CheckoutUseCase caso de uso de confirmación de pedido.
type CheckoutUseCase struct {
	orders OrderCreator
	cache  Invalidator
	log    *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(orders OrderCreator, cache Invalidator, log *logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, cache: cache, log: log}
}

// Checkout convierte el carrito en la secuencia {menu_item_id, quantity} y
// la envía como una única creación de pedido.
//
// Semántica de fallo: si la llamada falla, el carrito queda intacto para
// reintentar (las mutaciones nunca se reintentan solas). Si tiene éxito,
// el carrito se vacía y se emite exactamente una invalidación para las
// claves de pedidos y de stock del café.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, cafeID, staffID string, cart *dompos.Cart) (*entity.Order, error) {
	if cafeID == "" {
		return nil, domain.ErrNoCafeSelected
	}
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	req := dto.CreateOrderRequest{StaffID: staffID, Items: make([]dto.OrderLine, 0, len(lines))}
	for _, l := range lines {
		req.Items = append(req.Items, dto.OrderLine{MenuItemID: l.MenuItemID, Quantity: l.Quantity})
	}

	order, err := uc.orders.CreateOrder(ctx, cafeID, req)
	if err != nil {
		uc.log.Warn().Err(err).Str("cafe_id", cafeID).Msg("checkout: creación de pedido falló; carrito intacto")
		return nil, err
	}

	cart.Clear()
	uc.cache.Invalidate(query.NewKey("orders", cafeID))
	uc.cache.Invalidate(query.NewKey("stock", cafeID))
	uc.log.Info().
		Str("order_id", order.ID).
		Str("cafe_id", cafeID).
		Int("lines", len(lines)).
		Msg("checkout: pedido creado")
	return order, nil
}
