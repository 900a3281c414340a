package pos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	apppos "github.com/jhoicas/Cafeteria-client/internal/application/pos"
	"github.com/jhoicas/Cafeteria-client/internal/application/query"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	dompos "github.com/jhoicas/Cafeteria-client/internal/domain/pos"
	"github.com/jhoicas/Cafeteria-client/pkg/logger"
)

// mockOrderCreator registra la última petición y devuelve lo programado.
type mockOrderCreator struct {
	lastCafeID string
	lastReq    dto.CreateOrderRequest
	calls      int
	order      *entity.Order
	err        error
}

func (m *mockOrderCreator) CreateOrder(_ context.Context, cafeID string, req dto.CreateOrderRequest) (*entity.Order, error) {
	m.calls++
	m.lastCafeID = cafeID
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

// mockInvalidator cuenta invalidaciones por prefijo.
type mockInvalidator struct {
	byPrefix map[query.Key]int
}

func (m *mockInvalidator) Invalidate(prefix query.Key) {
	if m.byPrefix == nil {
		m.byPrefix = make(map[query.Key]int)
	}
	m.byPrefix[prefix]++
}

func cartWith(t *testing.T) *dompos.Cart {
	t.Helper()
	c := dompos.NewCart()
	c.Add("espresso")
	c.Add("espresso")
	c.Add("croissant")
	return c
}

func TestCheckout_ExitoVaciaCarritoEInvalidaUnaVez(t *testing.T) {
	creator := &mockOrderCreator{order: &entity.Order{ID: "o1", TotalRevenue: decimal.NewFromInt(25)}}
	inv := &mockInvalidator{}
	uc := apppos.NewCheckoutUseCase(creator, inv, logger.Nop())
	cart := cartWith(t)

	order, err := uc.Checkout(context.Background(), "cafe-1", "staff-1", cart)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "o1", order.ID)

	// El pedido viaja como pares {menu_item_id, quantity} ya fusionados
	assert.Equal(t, "cafe-1", creator.lastCafeID)
	assert.Equal(t, "staff-1", creator.lastReq.StaffID)
	assert.ElementsMatch(t, []dto.OrderLine{
		{MenuItemID: "espresso", Quantity: 2},
		{MenuItemID: "croissant", Quantity: 1},
	}, creator.lastReq.Items)

	assert.True(t, cart.IsEmpty(), "checkout exitoso debe vaciar el carrito")
	assert.Equal(t, 1, inv.byPrefix[query.NewKey("orders", "cafe-1")],
		"exactamente una invalidación de pedidos")
	assert.Equal(t, 1, inv.byPrefix[query.NewKey("stock", "cafe-1")],
		"exactamente una invalidación de stock")
}

// Si la red falla, el carrito queda intacto para que el usuario reintente;
// la mutación no se reintenta sola y no se invalida nada.
func TestCheckout_FalloDejaCarritoIntacto(t *testing.T) {
	creator := &mockOrderCreator{err: errors.New("connection refused")}
	inv := &mockInvalidator{}
	uc := apppos.NewCheckoutUseCase(creator, inv, logger.Nop())
	cart := cartWith(t)
	before := cart.Lines()

	_, err := uc.Checkout(context.Background(), "cafe-1", "staff-1", cart)
	require.Error(t, err)

	assert.Equal(t, before, cart.Lines(), "el carrito no debe mutar en un checkout fallido")
	assert.Equal(t, 1, creator.calls, "las mutaciones jamás se reintentan automáticamente")
	assert.Empty(t, inv.byPrefix, "sin éxito no hay invalidación")
}

func TestCheckout_ValidacionesPrevias(t *testing.T) {
	creator := &mockOrderCreator{}
	uc := apppos.NewCheckoutUseCase(creator, &mockInvalidator{}, logger.Nop())

	_, err := uc.Checkout(context.Background(), "", "staff-1", cartWith(t))
	assert.ErrorIs(t, err, domain.ErrNoCafeSelected)

	_, err = uc.Checkout(context.Background(), "cafe-1", "staff-1", dompos.NewCart())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	assert.Zero(t, creator.calls, "ninguna validación previa debe llegar a la red")
}
