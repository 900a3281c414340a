// Package storage implementa la persistencia del slot de sesión en disco:
// un único archivo JSON con nombre fijo, equivalente al slot "auth-storage"
// del almacenamiento local del navegador.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/Cafeteria-client/internal/application/session"
)

// Compilación: FilePersister satisface el puerto de persistencia de sesión.
var _ session.Persister = (*FilePersister)(nil)

// FilePersister guarda el estado de sesión en un archivo JSON. El token
// viaja dentro, así que el archivo se escribe con permisos 0600.
type FilePersister struct {
	path string
}

// NewFilePersister crea el persistidor sobre la ruta dada y garantiza que
// el directorio padre exista.
func NewFilePersister(path string) (*FilePersister, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("storage: crear directorio de sesión: %w", err)
	}
	return &FilePersister{path: path}, nil
}

// Save serializa el estado completo y lo escribe de forma atómica:
// primero a un archivo temporal vecino y luego rename sobre el definitivo,
// para que un corte a mitad de escritura no deje un slot corrupto.
func (p *FilePersister) Save(state session.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: serializar sesión: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("storage: escribir slot temporal: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("storage: publicar slot de sesión: %w", err)
	}
	return nil
}

// Load lee el slot persistido. ok=false si aún no existe; un slot corrupto
// se trata como error (el llamador decide arrancar vacío).
func (p *FilePersister) Load() (session.State, bool, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return session.State{}, false, nil
	}
	if err != nil {
		return session.State{}, false, fmt.Errorf("storage: leer slot de sesión: %w", err)
	}

	var state session.State
	if err := json.Unmarshal(data, &state); err != nil {
		return session.State{}, false, fmt.Errorf("storage: slot de sesión corrupto: %w", err)
	}
	return state, true, nil
}
