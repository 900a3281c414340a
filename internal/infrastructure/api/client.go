// Package api implementa el gateway HTTP hacia la API del café
// (base /api/v1). Todas las responsabilidades transversales viven aquí:
//
//   - adjuntar Authorization: Bearer <token> cuando hay token
//   - manejo global del 401: limpiar sesión + navegar al login, una vez
//     por respuesta, sin importar qué página disparó la llamada
//   - timeout por defecto de 60 s
//   - un único reintento silencioso para lecturas (GET); las mutaciones
//     jamás se reintentan para no duplicar efectos
//   - traducción de estados HTTP a errores de dominio
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/pkg/logger"
)

const defaultTimeout = 60 * time.Second

// Session lo que el gateway necesita de la sesión: leer el token y
// poder limpiarla ante un 401.
type Session interface {
	Token() string
	Logout()
}

// NavigateFunc callback de "navegar al login". En el CLI imprime el aviso
// y corta el flujo; en tests cuenta invocaciones.
type NavigateFunc func()

// Config opciones del gateway.
type Config struct {
	BaseURL string
	Timeout time.Duration // 0 ⇒ 60 s
}

// Client gateway HTTP. Una instancia por proceso; segura para uso
// concurrente (http.Client ya lo es y el resto es de solo lectura).
type Client struct {
	baseURL  string
	http     *http.Client
	session  Session
	navigate NavigateFunc
	log      *logger.Logger
}

// New construye el gateway. navigate puede ser nil (no-op).
func New(cfg Config, sess Session, navigate NavigateFunc, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if navigate == nil {
		navigate = func() {}
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		session:  sess,
		navigate: navigate,
		log:      log,
	}
}

// ── Núcleo de peticiones ──────────────────────────────────────────────────────

// do emite una petición JSON y decodifica la respuesta en out (si no es nil).
// Para GET aplica exactamente un reintento ante fallo de red o 5xx.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2 // lectura: un reintento silencioso
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		retryable, err := c.doOnce(ctx, method, path, query, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || attempt == attempts {
			break
		}
		c.log.Debug().Err(err).Str("path", path).Msg("api: lectura fallida; reintentando una vez")
	}
	return lastErr
}

// doOnce ejecuta un intento. retryable indica si el fallo es elegible para
// el reintento de lecturas (red/timeout/5xx; nunca errores 4xx).
func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, payload []byte, out any) (retryable bool, err error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return false, fmt.Errorf("api: construir petición: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.prepare(req)

	resp, err := c.http.Do(req)
	if err != nil {
		// Red caída o timeout del cliente (60 s): fallo genérico
		return true, fmt.Errorf("api: %s %s: %w: %v", method, path, domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, method, path); err != nil {
		return resp.StatusCode >= 500, err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("api: decodificar respuesta de %s %s: %w", method, path, err)
	}
	return false, nil
}

// prepare adjunta los headers transversales: bearer (si hay token) y un
// X-Request-ID para correlacionar logs cliente↔servidor. Sin token la
// petición sale sin autenticar; el servidor la rechazará si lo requiere.
func (c *Client) prepare(req *http.Request) {
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
}

// checkStatus traduce estados no-2xx a errores de dominio. El 401 dispara
// el manejo global: limpiar sesión y navegar al login exactamente una vez
// por respuesta — ninguna página implementa su propio manejo de 401.
func (c *Client) checkStatus(resp *http.Response, method, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := readDetail(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn().Str("path", path).Msg("api: 401; se limpia la sesión y se navega al login")
		c.session.Logout()
		c.navigate()
		return fmt.Errorf("api: %s %s: %w", method, path, domain.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("api: %s %s: %w", method, path, domain.ErrForbidden)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("api: %s %s: %w", method, path, domain.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("api: %s %s: %s: %w", method, path, detail, domain.ErrConflict)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Fallo de validación: se muestra el detail al que disparó la acción
		return fmt.Errorf("api: %s %s: %s: %w", method, path, detail, domain.ErrInvalidInput)
	default:
		return fmt.Errorf("api: %s %s: estado %d: %w", method, path, resp.StatusCode, domain.ErrUnavailable)
	}
}

// readDetail extrae el campo detail del cuerpo de error, si lo hay.
func readDetail(r io.Reader) string {
	var e dto.ErrorResponse
	if err := json.NewDecoder(r).Decode(&e); err != nil || e.Detail == "" {
		return "error de la API"
	}
	return e.Detail
}

// ── Helpers por verbo ─────────────────────────────────────────────────────────

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, nil)
}
