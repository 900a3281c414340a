package api

import (
	"context"
	"net/url"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	apppos "github.com/jhoicas/Cafeteria-client/internal/application/pos"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa el puerto
// de creación de pedidos del checkout.
var _ apppos.OrderCreator = (*Client)(nil)

// ListOrders pedidos del café; date (YYYY-MM-DD) filtra por día, "" trae todos.
func (c *Client) ListOrders(ctx context.Context, cafeID, date string) ([]entity.Order, error) {
	var q url.Values
	if date != "" {
		q = url.Values{"date": {date}}
	}
	var orders []entity.Order
	if err := c.get(ctx, "/cafes/"+cafeID+"/orders", q, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder crea el pedido en una única llamada. El servidor toma los
// snapshots de precio/costo y decrementa el stock según las recetas.
func (c *Client) CreateOrder(ctx context.Context, cafeID string, req dto.CreateOrderRequest) (*entity.Order, error) {
	var order entity.Order
	if err := c.post(ctx, "/cafes/"+cafeID+"/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder anula un pedido; el servidor repone el stock consumido.
func (c *Client) DeleteOrder(ctx context.Context, cafeID, orderID string) error {
	return c.delete(ctx, "/cafes/"+cafeID+"/orders/"+orderID, nil)
}
