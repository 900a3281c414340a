package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El gateway traduce los estados HTTP de la API a estos sentinelas;
// el resto del código decide con errors.Is sin mirar códigos de red.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrUnavailable      = errors.New("servicio no disponible")
	ErrNoCafeSelected   = errors.New("ningún café seleccionado")
	ErrEmptyCart        = errors.New("el carrito está vacío")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
