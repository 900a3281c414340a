package memory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Cafeteria-client/internal/domain"
)

// SaveFile guarda un binario subido y devuelve su URL pública. El nombre
// se prefija con un UUID para que dos subidas del mismo archivo no choquen.
func (s *Store) SaveFile(filename string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := "/static/" + uuid.NewString() + "_" + filename
	s.files[url] = append([]byte(nil), data...)
	return url
}

// GetFile devuelve el contenido de un archivo por su URL.
func (s *Store) GetFile(url string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[url]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// DeleteFile borra por filename o URL completa. El borrado se clava por
// nombre, no por ID.
func (s *Store) DeleteFile(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[filename]; ok {
		delete(s.files, filename)
		return nil
	}
	for url := range s.files {
		if strings.HasSuffix(url, "_"+filename) {
			delete(s.files, url)
			return nil
		}
	}
	return domain.ErrNotFound
}
