package dto

// ErrorResponse cuerpo de error de la API del café (estilo FastAPI):
// un único campo detail con el mensaje legible.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
