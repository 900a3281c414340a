package memory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ListStock inventario del café.
func (s *Store) ListStock(cafeID string) ([]entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	return append([]entity.StockItem(nil), s.stock[cafeID]...), nil
}

// CreateStockItem da de alta materia prima.
func (s *Store) CreateStockItem(cafeID string, req dto.StockItemRequest) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	item := entity.StockItem{
		ID:                uuid.NewString(),
		CafeID:            cafeID,
		Name:              req.Name,
		UnitOfMeasure:     req.UnitOfMeasure,
		CurrentQuantity:   req.CurrentQuantity,
		CostPerUnit:       req.CostPerUnit,
		LowStockThreshold: req.LowStockThreshold,
	}
	s.stock[cafeID] = append(s.stock[cafeID], item)
	return &item, nil
}

// UpdateStockItem edita nombre, unidad, cantidad, costo y umbral.
func (s *Store) UpdateStockItem(cafeID, itemID string, req dto.StockItemRequest) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findStock(cafeID, itemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = req.Name
	item.UnitOfMeasure = req.UnitOfMeasure
	item.CurrentQuantity = req.CurrentQuantity
	item.CostPerUnit = req.CostPerUnit
	item.LowStockThreshold = req.LowStockThreshold
	out := *item
	return &out, nil
}

// UpdateStockCost cambia solo el costo unitario.
func (s *Store) UpdateStockCost(cafeID, itemID string, cost decimal.Decimal) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findStock(cafeID, itemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.CostPerUnit = cost
	out := *item
	return &out, nil
}

// Restock suma cantidad al inventario y registra el movimiento. Si viene
// costo, el nuevo costo unitario reemplaza al anterior.
func (s *Store) Restock(cafeID, itemID string, req dto.RestockRequest) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findStock(cafeID, itemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	item.CurrentQuantity = item.CurrentQuantity.Add(req.Quantity)
	if req.CostPerUnit.IsPositive() {
		item.CostPerUnit = req.CostPerUnit
	}
	s.recordMovement(cafeID, entity.StockMovement{
		StockItemID: item.ID,
		StockName:   item.Name,
		Type:        "restock",
		Quantity:    req.Quantity,
		CostPerUnit: item.CostPerUnit,
	})
	out := *item
	return &out, nil
}

// RecordStockWaste descuenta merma de materia prima.
// ErrInsufficientStock si la cantidad supera la existencia.
func (s *Store) RecordStockWaste(cafeID, itemID string, req dto.StockWasteRequest) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findStock(cafeID, itemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if req.Quantity.GreaterThan(item.CurrentQuantity) {
		return nil, domain.ErrInsufficientStock
	}
	item.CurrentQuantity = item.CurrentQuantity.Sub(req.Quantity)
	s.recordMovement(cafeID, entity.StockMovement{
		StockItemID: item.ID,
		StockName:   item.Name,
		Type:        "waste",
		Quantity:    req.Quantity.Neg(),
		Reason:      req.Reason,
	})
	out := *item
	return &out, nil
}

// StockItemHistory movimientos de un ítem concreto, del más reciente al
// más antiguo.
func (s *Store) StockItemHistory(cafeID, itemID string) ([]entity.StockMovement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findStock(cafeID, itemID) == nil {
		return nil, domain.ErrNotFound
	}
	var out []entity.StockMovement
	moves := s.movements[cafeID]
	for i := len(moves) - 1; i >= 0; i-- {
		if moves[i].StockItemID == itemID {
			out = append(out, moves[i])
		}
	}
	return out, nil
}

// StockHistory movimientos de todo el café, del más reciente al más antiguo.
func (s *Store) StockHistory(cafeID string) ([]entity.StockMovement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	moves := s.movements[cafeID]
	out := make([]entity.StockMovement, 0, len(moves))
	for i := len(moves) - 1; i >= 0; i-- {
		out = append(out, moves[i])
	}
	return out, nil
}

// DeleteStockItem elimina el ítem. ErrConflict si alguna receta lo referencia.
func (s *Store) DeleteStockItem(cafeID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lines := range s.recipes {
		for _, l := range lines {
			if l.StockItemID == itemID {
				return domain.ErrConflict
			}
		}
	}
	items := s.stock[cafeID]
	for i, it := range items {
		if it.ID == itemID {
			s.stock[cafeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Se llaman con el mutex tomado.

func (s *Store) findStock(cafeID, itemID string) *entity.StockItem {
	items := s.stock[cafeID]
	for i := range items {
		if items[i].ID == itemID {
			return &items[i]
		}
	}
	return nil
}

func (s *Store) recordMovement(cafeID string, m entity.StockMovement) {
	m.ID = uuid.NewString()
	m.Timestamp = s.now()
	s.movements[cafeID] = append(s.movements[cafeID], m)
}
