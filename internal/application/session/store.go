// Package session mantiene el estado de autenticación del cliente:
// usuario, token y café seleccionado. Es un objeto inyectable, no un
// global de paquete, para poder instanciar sesiones aisladas en tests.
package session

import (
	"sync"
	"time"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/pkg/jwt"
	"github.com/jhoicas/Cafeteria-client/pkg/logger"
)

// State foto inmutable de la sesión. Los nombres JSON replican el slot
// "auth-storage" del cliente web para poder compartir el mismo archivo.
type State struct {
	User           *entity.User `json:"user"`
	Token          string       `json:"token"`
	SelectedCafeID string       `json:"selectedCafeId"`
}

// Persister puerto de persistencia del slot durable con nombre fijo.
// Load devuelve ok=false si el slot aún no existe.
type Persister interface {
	Save(State) error
	Load() (State, bool, error)
}

// Store sesión activa del proceso. Cada mutación es una transición
// síncrona bajo mutex (nunca cede el control a mitad de transición) y se
// persiste al slot durable. Las transiciones en sí no pueden fallar: un
// error de persistencia se loggea y no se propaga.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	log       *logger.Logger
}

// NewStore construye la sesión y la repuebla desde el slot persistido si
// existe (sobrevivir al "reload" del proceso).
func NewStore(p Persister, log *logger.Logger) *Store {
	s := &Store{persister: p, log: log}
	if p == nil {
		return s
	}
	state, ok, err := p.Load()
	if err != nil {
		log.Warn().Err(err).Msg("sesión: no se pudo leer el slot persistido; se arranca vacía")
		return s
	}
	if ok {
		s.state = state
	}
	return s
}

// SetAuth reemplaza usuario y token atómicamente. Se usa tras el par
// login + fetch de perfil.
func (s *Store) SetAuth(user *entity.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	s.state.Token = token
	s.persist()
}

// SetToken reemplaza solo el token. Necesario porque el login devuelve el
// token antes de poder pedir el perfil: el gateway necesita el token en su
// sitio para emitir GET /auth/me.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	s.persist()
}

// SetSelectedCafe cambia el café activo; todas las consultas posteriores
// deben clavarse a este valor.
func (s *Store) SetSelectedCafe(cafeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCafeID = cafeID
	s.persist()
}

// Logout limpia usuario, token y café seleccionado como una sola operación.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
	s.persist()
}

// Snapshot devuelve una copia del estado actual.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token devuelve el token actual ("" si no hay sesión).
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User devuelve el usuario actual (nil si no hay sesión).
func (s *Store) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

// SelectedCafeID devuelve el café activo ("" si no se ha elegido).
func (s *Store) SelectedCafeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedCafeID
}

// TokenExpiresAt decodifica (sin verificar) la expiración del token actual.
// Zero time si no hay token o el token no declara exp.
func (s *Store) TokenExpiresAt() time.Time {
	tok := s.Token()
	if tok == "" {
		return time.Time{}
	}
	exp, err := jwt.ExpiresAt(tok)
	if err != nil {
		return time.Time{}
	}
	return exp
}

// persist escribe el estado al slot durable. Se llama con el mutex tomado.
// El fallo es best-effort explícito: se loggea y se ignora.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.state); err != nil {
		s.log.Warn().Err(err).Msg("sesión: fallo al persistir el slot; se continúa en memoria")
	}
}
