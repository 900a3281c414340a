// Package pos implementa el carrito de punto de venta: la colección de
// líneas {menu_item_id, quantity} en curso antes de confirmar un pedido.
//
// Invariantes:
//   - a lo sumo una línea por menu_item_id (las cantidades se fusionan)
//   - toda cantidad es >= 1; quitar la última unidad elimina la línea
//   - el total se calcula contra el snapshot de carta vigente; un ítem que
//     ya no existe en la carta aporta 0, nunca es un error
package pos

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// Line una línea del carrito.
type Line struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// Cart carrito de pedido en curso. Seguro para uso concurrente: cada
// transición de estado es una sección crítica que no cede el control,
// igual que las mutaciones síncronas del cliente original.
type Cart struct {
	mu    sync.Mutex
	lines []Line // orden de inserción; estable para la UI y los tests
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// Add incrementa en 1 la cantidad del ítem, creando la línea si no existe.
func (c *Cart) Add(menuItemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{MenuItemID: menuItemID, Quantity: 1})
}

// Remove decrementa en 1 la cantidad del ítem; si la cantidad era 1,
// elimina la línea. Sobre un ítem ausente no hace nada.
func (c *Cart) Remove(menuItemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].MenuItemID != menuItemID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// SetQuantity fija la cantidad de un ítem existente. Valores <= 0 se
// clampan a 1: nunca queda una línea con cantidad cero. Si el ítem no
// tiene línea, la crea con la cantidad indicada.
func (c *Cart) SetQuantity(menuItemID string, n int) {
	if n < 1 {
		n = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity = n
			return
		}
	}
	c.lines = append(c.lines, Line{MenuItemID: menuItemID, Quantity: n})
}

// Clear vacía el carrito. No es un estado terminal: se puede volver a llenar.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Restore reemplaza el contenido del carrito por las líneas dadas.
// Lo usa el checkout para devolver el carrito a su estado previo si la
// creación del pedido falla.
func (c *Cart) Restore(lines []Line) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
}

// LineCount número de líneas distintas (productos diferentes).
func (c *Cart) LineCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// ItemCount suma de cantidades (unidades totales).
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// IsEmpty reporta si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return c.LineCount() == 0
}

// Total calcula Σ cantidad × precio contra el snapshot de carta dado.
// Una línea cuyo ítem ya no está en la carta aporta 0.
func (c *Cart) Total(menu []entity.MenuItem) decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(menu))
	for _, m := range menu {
		prices[m.ID] = m.SalePrice
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.lines {
		price, ok := prices[l.MenuItemID]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
