package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/application/session"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Cafeteria-client/pkg/jwt"
	"github.com/jhoicas/Cafeteria-client/pkg/logger"
)

// fakePersister persister en memoria que cuenta escrituras y puede fallar.
type fakePersister struct {
	state  session.State
	loaded bool
	saves  int
	fail   bool
}

func (f *fakePersister) Save(s session.State) error {
	f.saves++
	if f.fail {
		return errors.New("disco lleno")
	}
	f.state = s
	f.loaded = true
	return nil
}

func (f *fakePersister) Load() (session.State, bool, error) {
	return f.state, f.loaded, nil
}

func TestStore_SetAuthYLogout(t *testing.T) {
	p := &fakePersister{}
	s := session.NewStore(p, logger.Nop())

	user := &entity.User{ID: "u1", Email: "sara@cafe.ma"}
	s.SetAuth(user, "tok-123")
	s.SetSelectedCafe("cafe-1")

	snap := s.Snapshot()
	assert.Equal(t, user, snap.User)
	assert.Equal(t, "tok-123", snap.Token)
	assert.Equal(t, "cafe-1", snap.SelectedCafeID)

	// Logout limpia las tres cosas como una sola operación
	s.Logout()
	snap = s.Snapshot()
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Token)
	assert.Empty(t, snap.SelectedCafeID)
}

// El login devuelve token antes de poder pedir el perfil: SetToken debe
// existir por separado de SetAuth y no tocar el usuario.
func TestStore_SetTokenNoTocaUsuario(t *testing.T) {
	s := session.NewStore(&fakePersister{}, logger.Nop())
	s.SetAuth(&entity.User{ID: "u1"}, "viejo")

	s.SetToken("nuevo")
	assert.Equal(t, "nuevo", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "u1", s.User().ID)
}

// La sesión sobrevive al reinicio del proceso vía el slot persistido.
func TestStore_RepueblaDesdeSlotPersistido(t *testing.T) {
	p := &fakePersister{}
	first := session.NewStore(p, logger.Nop())
	first.SetAuth(&entity.User{ID: "u9"}, "tok-9")
	first.SetSelectedCafe("cafe-9")

	// "reload": nueva instancia sobre el mismo persister
	second := session.NewStore(p, logger.Nop())
	snap := second.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, "u9", snap.User.ID)
	assert.Equal(t, "tok-9", snap.Token)
	assert.Equal(t, "cafe-9", snap.SelectedCafeID)
}

// Cada mutación escribe al slot; el fallo de persistencia no se propaga
// (las transiciones de sesión no pueden fallar).
func TestStore_PersisteEnCadaMutacionYNoPropagaFallos(t *testing.T) {
	p := &fakePersister{}
	s := session.NewStore(p, logger.Nop())

	s.SetToken("a")
	s.SetSelectedCafe("c")
	s.Logout()
	assert.Equal(t, 3, p.saves, "una escritura por mutación")

	p.fail = true
	assert.NotPanics(t, func() { s.SetToken("b") })
	assert.Equal(t, "b", s.Token(), "el estado en memoria avanza aunque el disco falle")
}

func TestStore_TokenExpiresAt(t *testing.T) {
	s := session.NewStore(&fakePersister{}, logger.Nop())
	assert.True(t, s.TokenExpiresAt().IsZero(), "sin token no hay expiración")

	tok, err := pkgjwt.Generate("secreto", "u1", "sara@cafe.ma", false, "test", 60)
	require.NoError(t, err)
	s.SetToken(tok)

	exp := s.TokenExpiresAt()
	assert.False(t, exp.IsZero())
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), exp, 5*time.Second)
}
