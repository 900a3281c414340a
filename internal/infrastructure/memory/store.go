// Package memory implementa el almacén en memoria del servidor stub:
// el mismo contrato HTTP que la API real pero sin base de datos, para
// desarrollo local y tests de integración. Todo vive bajo un único mutex;
// el stub no aspira a más concurrencia que la de una estación de pruebas.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// Store estado completo del stub. Los slices conservan orden de inserción
// para que los listados sean estables entre llamadas.
type Store struct {
	mu sync.Mutex

	users       []entity.User
	passwords   map[string]string   // userID → hash bcrypt
	assignments map[string][]string // userID → cafeIDs

	cafes      []entity.Cafe
	stock      map[string][]entity.StockItem     // cafeID → items
	movements  map[string][]entity.StockMovement // cafeID → historial
	categories map[string][]entity.Category
	menu       map[string][]entity.MenuItem
	recipes    map[string][]entity.RecipeLine // menuItemID → líneas
	orders     map[string][]entity.Order
	menuWaste  map[string][]entity.MenuWasteRecord
	staff      map[string][]entity.Staff
	salaries   map[string][]entity.SalaryRecord // staffID → historial
	monthly    map[string][]entity.MonthlyExpense
	daily      map[string][]entity.DailyExpense

	files map[string][]byte // URL → contenido

	now func() time.Time
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		passwords:   make(map[string]string),
		assignments: make(map[string][]string),
		stock:       make(map[string][]entity.StockItem),
		movements:   make(map[string][]entity.StockMovement),
		categories:  make(map[string][]entity.Category),
		menu:        make(map[string][]entity.MenuItem),
		recipes:     make(map[string][]entity.RecipeLine),
		orders:      make(map[string][]entity.Order),
		menuWaste:   make(map[string][]entity.MenuWasteRecord),
		staff:       make(map[string][]entity.Staff),
		salaries:    make(map[string][]entity.SalaryRecord),
		monthly:     make(map[string][]entity.MonthlyExpense),
		daily:       make(map[string][]entity.DailyExpense),
		files:       make(map[string][]byte),
		now:         time.Now,
	}
}

// SetClock fija el reloj del stub (solo tests).
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// ── Usuarios y autenticación ──────────────────────────────────────────────────

// CreateUser da de alta un usuario con su hash bcrypt.
// Devuelve ErrConflict si el email ya existe.
func (s *Store) CreateUser(email, password, fullName string, isAdmin bool) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, domain.ErrConflict
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  fullName,
		IsAdmin:   isAdmin,
		CreatedAt: s.now(),
	}
	s.users = append(s.users, user)
	s.passwords[user.ID] = string(hash)
	return &user, nil
}

// Authenticate valida credenciales. Un email inexistente y una contraseña
// incorrecta devuelven el mismo error para no filtrar qué emails existen.
func (s *Store) Authenticate(email, password string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(s.passwords[u.ID]), []byte(password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		user := u
		return &user, nil
	}
	return nil, domain.ErrUnauthorized
}

// GetUser busca un usuario por ID.
func (s *Store) GetUser(id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListUsers devuelve todos los usuarios (solo admin).
func (s *Store) ListUsers() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.User(nil), s.users...)
}

// ── Cafés y asignaciones ──────────────────────────────────────────────────────

// CreateCafe da de alta un café y asigna al creador.
func (s *Store) CreateCafe(ownerID, name, address, currencySymbol string) *entity.Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()

	cafe := entity.Cafe{
		ID:             uuid.NewString(),
		Name:           name,
		Address:        address,
		CurrencySymbol: currencySymbol,
		CreatedAt:      s.now(),
	}
	s.cafes = append(s.cafes, cafe)
	if ownerID != "" {
		s.assignments[ownerID] = append(s.assignments[ownerID], cafe.ID)
	}
	return &cafe
}

// ListCafesFor devuelve los cafés asignados al usuario; un admin ve todos.
func (s *Store) ListCafesFor(userID string) []entity.Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == userID && u.IsAdmin {
			return append([]entity.Cafe(nil), s.cafes...)
		}
	}
	var out []entity.Cafe
	for _, cafeID := range s.assignments[userID] {
		for _, c := range s.cafes {
			if c.ID == cafeID {
				out = append(out, c)
			}
		}
	}
	return out
}

// ListAllCafes devuelve todos los cafés (solo admin).
func (s *Store) ListAllCafes() []entity.Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Cafe(nil), s.cafes...)
}

// AssignCafe vincula usuario↔café. Idempotente.
func (s *Store) AssignCafe(userID, cafeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.userExists(userID) || !s.cafeExists(cafeID) {
		return domain.ErrNotFound
	}
	for _, id := range s.assignments[userID] {
		if id == cafeID {
			return nil
		}
	}
	s.assignments[userID] = append(s.assignments[userID], cafeID)
	return nil
}

// UnassignCafe rompe el vínculo usuario↔café.
func (s *Store) UnassignCafe(userID, cafeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.assignments[userID]
	for i, id := range ids {
		if id == cafeID {
			s.assignments[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// CafeUsers devuelve los usuarios asignados a un café.
func (s *Store) CafeUsers(cafeID string) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	var out []entity.User
	for _, u := range s.users {
		for _, id := range s.assignments[u.ID] {
			if id == cafeID {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

// HasAccess indica si el usuario puede operar sobre el café
// (asignado o admin).
func (s *Store) HasAccess(userID, cafeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == userID && u.IsAdmin {
			return true
		}
	}
	for _, id := range s.assignments[userID] {
		if id == cafeID {
			return true
		}
	}
	return false
}

// Se llaman con el mutex tomado.

func (s *Store) userExists(id string) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) cafeExists(id string) bool {
	for _, c := range s.cafes {
		if c.ID == id {
			return true
		}
	}
	return false
}
