package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/application/session"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/storage"
)

func TestFilePersister_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cafeteria", "auth-storage.json")
	p, err := storage.NewFilePersister(path)
	require.NoError(t, err, "debe crear el directorio padre si no existe")

	// Slot aún inexistente
	_, ok, err := p.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	want := session.State{
		User:           &entity.User{ID: "u1", Email: "sara@cafe.ma", IsAdmin: true},
		Token:          "tok-123",
		SelectedCafeID: "cafe-1",
	}
	require.NoError(t, p.Save(want))

	got, ok, err := p.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFilePersister_ArchivoConPermisosRestringidos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	p, err := storage.NewFilePersister(path)
	require.NoError(t, err)
	require.NoError(t, p.Save(session.State{Token: "secreto"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "el slot contiene el token")
}

func TestFilePersister_SlotCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	p, err := storage.NewFilePersister(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, ok, err := p.Load()
	assert.Error(t, err)
	assert.False(t, ok)
}

// Los nombres JSON del slot replican el cliente web (camelCase en
// selectedCafeId) para poder compartir archivo entre clientes.
func TestFilePersister_NombresCompatiblesConElSlotWeb(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	p, err := storage.NewFilePersister(path)
	require.NoError(t, err)
	require.NoError(t, p.Save(session.State{SelectedCafeID: "cafe-9"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"selectedCafeId": "cafe-9"`)
	assert.Contains(t, string(raw), `"token"`)
	assert.Contains(t, string(raw), `"user"`)
}
