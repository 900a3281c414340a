package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
)

// UploadFile sube un archivo binario como multipart form data bajo el
// campo "file" y devuelve la URL pública asignada.
func (c *Client) UploadFile(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("api: preparar multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("api: escribir multipart: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("api: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/", &buf)
	if err != nil {
		return nil, fmt.Errorf("api: construir petición de upload: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.prepare(req)

	// Upload es mutación: un solo intento, sin reintentos
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: POST /upload/: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, http.MethodPost, "/upload/"); err != nil {
		return nil, err
	}

	var out dto.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("api: decodificar respuesta de upload: %w", err)
	}
	return &out, nil
}

// DeleteFile borra un archivo subido previamente. El borrado se clava por
// filename/URL, no por ID.
func (c *Client) DeleteFile(ctx context.Context, filename string) error {
	return c.delete(ctx, "/upload/", dto.DeleteFileRequest{Filename: filename})
}
