package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// UploadHandler rutas /upload y /static.
type UploadHandler struct {
	store *memory.Store
}

// NewUploadHandler construye el handler de archivos.
func NewUploadHandler(store *memory.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload recibe el binario como multipart bajo el campo "file" y devuelve
// la URL asignada (POST /upload/).
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "se espera multipart con el campo 'file'")
	}
	f, err := header.Open()
	if err != nil {
		return badRequest(c, "archivo ilegible")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "archivo ilegible")
	}

	url := h.store.SaveFile(header.Filename, data)
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}

// Delete borra por filename/URL, no por ID (DELETE /upload/ con cuerpo
// JSON {filename}).
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Filename == "" {
		return badRequest(c, "filename es requerido")
	}
	if err := h.store.DeleteFile(in.Filename); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Serve sirve un archivo subido (GET /static/:name).
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	data, err := h.store.GetFile("/static/" + c.Params("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.Send(data)
}
