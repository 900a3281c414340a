package memory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ListOrders pedidos del café; date (YYYY-MM-DD) filtra por día, "" devuelve
// todos. Del más reciente al más antiguo.
func (s *Store) ListOrders(cafeID, date string) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	orders := s.orders[cafeID]
	out := make([]entity.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		if date == "" || orders[i].Timestamp.Format("2006-01-02") == date {
			out = append(out, orders[i])
		}
	}
	return out, nil
}

// CreateOrder registra una venta: toma los snapshots de precio y costo de
// receta vigentes, verifica que el stock alcance para todas las líneas y
// descuenta los ingredientes. Todo o nada: un pedido con stock insuficiente
// no descuenta nada.
func (s *Store) CreateOrder(cafeID string, req dto.CreateOrderRequest) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	staffName := ""
	if req.StaffID != "" {
		st := s.findStaff(cafeID, req.StaffID)
		if st == nil {
			return nil, domain.ErrInvalidInput
		}
		staffName = st.Name
	}

	// Primera pasada: validar líneas y acumular el consumo total de stock
	needs := make(map[string]decimal.Decimal)
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		item := s.findMenu(cafeID, line.MenuItemID)
		if item == nil {
			return nil, domain.ErrInvalidInput
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		for _, r := range s.recipes[line.MenuItemID] {
			needs[r.StockItemID] = needs[r.StockItemID].Add(r.QuantityUsed.Mul(qty))
		}
	}
	for stockID, need := range needs {
		item := s.findStock(cafeID, stockID)
		if item == nil || need.GreaterThan(item.CurrentQuantity) {
			return nil, domain.ErrInsufficientStock
		}
	}

	// Segunda pasada: snapshots y descuento
	order := entity.Order{
		ID:        uuid.NewString(),
		CafeID:    cafeID,
		Timestamp: s.now(),
		StaffID:   req.StaffID,
		StaffName: staffName,
	}
	for _, line := range req.Items {
		item := s.findMenu(cafeID, line.MenuItemID)
		unitCost := s.recipeCost(cafeID, line.MenuItemID)
		qty := decimal.NewFromInt(int64(line.Quantity))

		order.Items = append(order.Items, entity.OrderItem{
			ID:           uuid.NewString(),
			MenuItemID:   item.ID,
			MenuItemName: item.Name,
			Quantity:     line.Quantity,
			PriceAtSale:  item.SalePrice,
			CostAtSale:   unitCost,
		})
		order.TotalRevenue = order.TotalRevenue.Add(item.SalePrice.Mul(qty))
		order.TotalCost = order.TotalCost.Add(unitCost.Mul(qty))
	}
	for stockID, need := range needs {
		item := s.findStock(cafeID, stockID)
		item.CurrentQuantity = item.CurrentQuantity.Sub(need)
		s.recordMovement(cafeID, entity.StockMovement{
			StockItemID: item.ID,
			StockName:   item.Name,
			Type:        "sale",
			Quantity:    need.Neg(),
			Reason:      "pedido " + order.ID,
		})
	}

	s.orders[cafeID] = append(s.orders[cafeID], order)
	return &order, nil
}

// DeleteOrder anula un pedido y repone el stock que consumió, según la
// receta vigente en el momento de la anulación.
func (s *Store) DeleteOrder(cafeID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orders[cafeID]
	for i, o := range orders {
		if o.ID != orderID {
			continue
		}
		for _, line := range o.Items {
			qty := decimal.NewFromInt(int64(line.Quantity))
			for _, r := range s.recipes[line.MenuItemID] {
				if item := s.findStock(cafeID, r.StockItemID); item != nil {
					restore := r.QuantityUsed.Mul(qty)
					item.CurrentQuantity = item.CurrentQuantity.Add(restore)
					s.recordMovement(cafeID, entity.StockMovement{
						StockItemID: item.ID,
						StockName:   item.Name,
						Type:        "adjustment",
						Quantity:    restore,
						Reason:      "anulación pedido " + o.ID,
					})
				}
			}
		}
		s.orders[cafeID] = append(orders[:i], orders[i+1:]...)
		return nil
	}
	return domain.ErrNotFound
}

// ── Merma de carta ────────────────────────────────────────────────────────────

// RecordMenuWaste registra merma de producto terminado: descuenta la receta
// completa multiplicada por la cantidad.
func (s *Store) RecordMenuWaste(cafeID string, req dto.MenuWasteRequest) (*entity.MenuWasteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findMenu(cafeID, req.MenuItemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	for _, r := range s.recipes[req.MenuItemID] {
		need := r.QuantityUsed.Mul(req.Quantity)
		st := s.findStock(cafeID, r.StockItemID)
		if st == nil || need.GreaterThan(st.CurrentQuantity) {
			return nil, domain.ErrInsufficientStock
		}
	}
	for _, r := range s.recipes[req.MenuItemID] {
		need := r.QuantityUsed.Mul(req.Quantity)
		st := s.findStock(cafeID, r.StockItemID)
		st.CurrentQuantity = st.CurrentQuantity.Sub(need)
		s.recordMovement(cafeID, entity.StockMovement{
			StockItemID: st.ID,
			StockName:   st.Name,
			Type:        "waste",
			Quantity:    need.Neg(),
			Reason:      "merma de " + item.Name,
		})
	}

	rec := entity.MenuWasteRecord{
		ID:           uuid.NewString(),
		MenuItemID:   item.ID,
		MenuItemName: item.Name,
		Quantity:     req.Quantity,
		Reason:       req.Reason,
		Timestamp:    s.now(),
	}
	s.menuWaste[cafeID] = append(s.menuWaste[cafeID], rec)
	return &rec, nil
}

// MenuWasteHistory mermas de carta del café, de la más reciente a la más
// antigua.
func (s *Store) MenuWasteHistory(cafeID string) ([]entity.MenuWasteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	records := s.menuWaste[cafeID]
	out := make([]entity.MenuWasteRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

// recipeCost costo unitario vigente de un producto: Σ cantidad usada ×
// costo del stock. Se llama con el mutex tomado.
func (s *Store) recipeCost(cafeID, menuItemID string) decimal.Decimal {
	cost := decimal.Zero
	for _, r := range s.recipes[menuItemID] {
		if item := s.findStock(cafeID, r.StockItemID); item != nil {
			cost = cost.Add(r.QuantityUsed.Mul(item.CostPerUnit))
		}
	}
	return cost
}
