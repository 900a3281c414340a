// Package query implementa la caché read-through de datos consultados,
// clavada por query key. El cliente nunca es fuente de verdad: la caché
// solo evita refetches y define dónde caen las señales de invalidación.
package query

import (
	"context"
	"strings"
	"sync"
)

// Key clave de consulta jerárquica, ej. "orders/cafe-1/2026-08-28".
// La invalidación opera por prefijo de segmentos.
type Key string

// NewKey compone una clave a partir de sus segmentos.
func NewKey(parts ...string) Key {
	return Key(strings.Join(parts, "/"))
}

// hasPrefix reporta si k cae bajo el prefijo dado (por segmentos completos:
// "orders/cafe-1" cubre "orders/cafe-1/..." pero no "orders/cafe-10").
func (k Key) hasPrefix(prefix Key) bool {
	if k == prefix {
		return true
	}
	return strings.HasPrefix(string(k), string(prefix)+"/")
}

type entry struct {
	value any
	gen   uint64
}

// Cache caché en memoria por query key con generaciones para descartar
// respuestas obsoletas: una respuesta resuelta después de una invalidación
// (o de un cambio de clave activa) no debe pisar estado más nuevo.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]entry
	gen     uint64 // generación global; se incrementa en cada invalidación
}

// NewCache crea una caché vacía.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]entry)}
}

// Get devuelve el valor cacheado para la clave, si existe.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Generation devuelve la generación global actual. Un fetch en vuelo
// captura la generación al despegar; si al aterrizar ya no coincide, su
// resultado no se almacena.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// put almacena el valor solo si la generación no avanzó desde el despegue.
// Devuelve false si la respuesta llegó obsoleta y fue descartada.
func (c *Cache) put(key Key, value any, genAtStart uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != genAtStart {
		return false
	}
	c.entries[key] = entry{value: value, gen: c.gen}
	return true
}

// Invalidate descarta todas las entradas bajo el prefijo dado y avanza la
// generación, de modo que los fetches en vuelo no puedan almacenar
// resultados tomados antes de la invalidación.
func (c *Cache) Invalidate(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for k := range c.entries {
		if k.hasPrefix(prefix) {
			delete(c.entries, k)
		}
	}
}

// Clear vacía la caché por completo (logout / cambio de café).
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.entries = make(map[Key]entry)
}

// Through resuelve una lectura a través de la caché: devuelve el valor
// cacheado si existe; si no, ejecuta fetch y almacena el resultado salvo
// que haya quedado obsoleto por una invalidación concurrente. El reintento
// de lecturas fallidas vive en el gateway, no aquí.
func Through[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	gen := c.Generation()
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.put(key, v, gen)
	return v, nil
}
