package memory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ── Carta ─────────────────────────────────────────────────────────────────────

// ListMenu carta del café con el nombre de categoría resuelto.
func (s *Store) ListMenu(cafeID string) ([]entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	items := append([]entity.MenuItem(nil), s.menu[cafeID]...)
	for i := range items {
		items[i].Category = s.categoryName(cafeID, items[i].CategoryID)
	}
	return items, nil
}

// CreateMenuItem da de alta un producto. El precio de venta debe ser > 0.
func (s *Store) CreateMenuItem(cafeID string, req dto.MenuItemRequest) (*entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	if !req.SalePrice.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	item := entity.MenuItem{
		ID:         uuid.NewString(),
		CafeID:     cafeID,
		Name:       req.Name,
		SalePrice:  req.SalePrice,
		CategoryID: req.CategoryID,
		Category:   s.categoryName(cafeID, req.CategoryID),
		ImageURL:   req.ImageURL,
	}
	s.menu[cafeID] = append(s.menu[cafeID], item)
	return &item, nil
}

// UpdateMenuItem edita el producto completo.
func (s *Store) UpdateMenuItem(cafeID, itemID string, req dto.MenuItemRequest) (*entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findMenu(cafeID, itemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !req.SalePrice.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	item.Name = req.Name
	item.SalePrice = req.SalePrice
	item.CategoryID = req.CategoryID
	item.Category = s.categoryName(cafeID, req.CategoryID)
	item.ImageURL = req.ImageURL
	out := *item
	return &out, nil
}

// UpdateMenuPrice cambia solo el precio de venta.
func (s *Store) UpdateMenuPrice(cafeID, itemID string, price decimal.Decimal) (*entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findMenu(cafeID, itemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	item.SalePrice = price
	out := *item
	return &out, nil
}

// DeleteMenuItem elimina el producto y su receta.
func (s *Store) DeleteMenuItem(cafeID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.menu[cafeID]
	for i, it := range items {
		if it.ID == itemID {
			s.menu[cafeID] = append(items[:i], items[i+1:]...)
			delete(s.recipes, itemID)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// GetRecipe líneas de receta de un producto.
func (s *Store) GetRecipe(cafeID, itemID string) ([]entity.RecipeLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findMenu(cafeID, itemID) == nil {
		return nil, domain.ErrNotFound
	}
	return append([]entity.RecipeLine(nil), s.recipes[itemID]...), nil
}

// ReplaceRecipe reemplaza la receta completa. Toda referencia de stock
// debe existir en el café.
func (s *Store) ReplaceRecipe(cafeID, itemID string, ingredients []dto.RecipeIngredient) ([]entity.RecipeLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findMenu(cafeID, itemID) == nil {
		return nil, domain.ErrNotFound
	}
	lines := make([]entity.RecipeLine, 0, len(ingredients))
	for _, ing := range ingredients {
		if s.findStock(cafeID, ing.StockItemID) == nil {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.RecipeLine{
			ID:           uuid.NewString(),
			MenuItemID:   itemID,
			StockItemID:  ing.StockItemID,
			QuantityUsed: ing.QuantityUsed,
		})
	}
	s.recipes[itemID] = lines
	return append([]entity.RecipeLine(nil), lines...), nil
}

// AddRecipeIngredient añade una línea a la receta.
func (s *Store) AddRecipeIngredient(cafeID, itemID string, ing dto.RecipeIngredient) (*entity.RecipeLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findMenu(cafeID, itemID) == nil {
		return nil, domain.ErrNotFound
	}
	if s.findStock(cafeID, ing.StockItemID) == nil {
		return nil, domain.ErrInvalidInput
	}
	line := entity.RecipeLine{
		ID:           uuid.NewString(),
		MenuItemID:   itemID,
		StockItemID:  ing.StockItemID,
		QuantityUsed: ing.QuantityUsed,
	}
	s.recipes[itemID] = append(s.recipes[itemID], line)
	return &line, nil
}

// DeleteRecipeIngredient elimina una línea de la receta.
func (s *Store) DeleteRecipeIngredient(cafeID, itemID, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findMenu(cafeID, itemID) == nil {
		return domain.ErrNotFound
	}
	lines := s.recipes[itemID]
	for i, l := range lines {
		if l.ID == lineID {
			s.recipes[itemID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories categorías del café.
func (s *Store) ListCategories(cafeID string) ([]entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	return append([]entity.Category(nil), s.categories[cafeID]...), nil
}

// CreateCategory da de alta una categoría. ErrConflict si el nombre ya existe.
func (s *Store) CreateCategory(cafeID, name string) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	for _, c := range s.categories[cafeID] {
		if c.Name == name {
			return nil, domain.ErrConflict
		}
	}
	cat := entity.Category{ID: uuid.NewString(), CafeID: cafeID, Name: name}
	s.categories[cafeID] = append(s.categories[cafeID], cat)
	return &cat, nil
}

// UpdateCategory renombra una categoría.
func (s *Store) UpdateCategory(cafeID, categoryID, name string) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := s.categories[cafeID]
	for i := range cats {
		if cats[i].ID == categoryID {
			cats[i].Name = name
			out := cats[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteCategory elimina la categoría; los productos quedan sin categoría.
func (s *Store) DeleteCategory(cafeID, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := s.categories[cafeID]
	for i, c := range cats {
		if c.ID == categoryID {
			s.categories[cafeID] = append(cats[:i], cats[i+1:]...)
			items := s.menu[cafeID]
			for j := range items {
				if items[j].CategoryID == categoryID {
					items[j].CategoryID = ""
					items[j].Category = ""
				}
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

// Se llaman con el mutex tomado.

func (s *Store) findMenu(cafeID, itemID string) *entity.MenuItem {
	items := s.menu[cafeID]
	for i := range items {
		if items[i].ID == itemID {
			return &items[i]
		}
	}
	return nil
}

func (s *Store) categoryName(cafeID, categoryID string) string {
	if categoryID == "" {
		return ""
	}
	for _, c := range s.categories[cafeID] {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return ""
}
