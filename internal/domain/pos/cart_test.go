package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/domain/pos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func menuFixture() []entity.MenuItem {
	return []entity.MenuItem{
		{ID: "espresso", Name: "Espresso", SalePrice: decimal.NewFromInt(10)},
		{ID: "croissant", Name: "Croissant", SalePrice: decimal.NewFromInt(5)},
		{ID: "latte", Name: "Latte", SalePrice: decimal.RequireFromString("12.50")},
	}
}

// assertInvariants verifica las propiedades que deben valer tras cada paso:
// toda cantidad >= 1 e ItemCount() == Σ cantidades.
func assertInvariants(t *testing.T, c *pos.Cart) {
	t.Helper()
	sum := 0
	for _, l := range c.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, 1, "ninguna línea puede quedar con cantidad < 1")
		sum += l.Quantity
	}
	assert.Equal(t, sum, c.ItemCount(), "ItemCount debe ser la suma de cantidades")
	assert.Equal(t, len(c.Lines()), c.LineCount(), "LineCount debe ser el número de líneas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones básicas
// ──────────────────────────────────────────────────────────────────────────────

// Add sobre un ítem existente fusiona cantidades: nunca hay dos líneas
// para el mismo menu_item_id.
func TestCart_AddFusionaCantidades(t *testing.T) {
	c := pos.NewCart()
	c.Add("espresso")
	c.Add("espresso")
	c.Add("croissant")

	require.Equal(t, 2, c.LineCount(), "dos productos distintos ⇒ dos líneas")
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, []pos.Line{
		{MenuItemID: "espresso", Quantity: 2},
		{MenuItemID: "croissant", Quantity: 1},
	}, c.Lines())
	assertInvariants(t, c)
}

// Remove con cantidad 1 elimina la línea por completo.
func TestCart_RemoveEliminaUltimaUnidad(t *testing.T) {
	c := pos.NewCart()
	c.Add("espresso")
	c.Add("espresso")

	c.Remove("espresso")
	assert.Equal(t, 1, c.ItemCount(), "decrementa cantidad si era > 1")

	c.Remove("espresso")
	assert.True(t, c.IsEmpty(), "quitar la última unidad elimina la línea")

	// Remove sobre ítem ausente no hace nada
	c.Remove("espresso")
	assert.True(t, c.IsEmpty())
	assertInvariants(t, c)
}

// SetQuantity clampa valores <= 0 a 1: jamás deja una línea en cero.
func TestCart_SetQuantityClampaMinimoUno(t *testing.T) {
	c := pos.NewCart()
	c.Add("latte")

	c.SetQuantity("latte", 7)
	assert.Equal(t, 7, c.ItemCount())

	c.SetQuantity("latte", 0)
	assert.Equal(t, 1, c.ItemCount(), "cantidad 0 se clampa a 1")

	c.SetQuantity("latte", -4)
	assert.Equal(t, 1, c.ItemCount(), "cantidad negativa se clampa a 1")
	assertInvariants(t, c)
}

func TestCart_ClearVaciaYSePuedeRellenar(t *testing.T) {
	c := pos.NewCart()
	c.Add("espresso")
	c.Add("croissant")
	c.Clear()
	require.True(t, c.IsEmpty())

	// Clear no es un estado terminal
	c.Add("latte")
	assert.Equal(t, 1, c.LineCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

// n pares add/remove balanceados devuelven el carrito a su estado previo.
func TestCart_AddRemoveBalanceadoEsIdaYVuelta(t *testing.T) {
	c := pos.NewCart()
	c.Add("espresso")
	c.Add("croissant")
	before := c.Lines()

	const n = 5
	for i := 0; i < n; i++ {
		c.Add("latte")
		assertInvariants(t, c)
	}
	for i := 0; i < n; i++ {
		c.Remove("latte")
		assertInvariants(t, c)
	}

	assert.Equal(t, before, c.Lines(), "add/remove balanceados deben ser neutros")
}

// El total es invariante ante reordenamientos de adds que producen las
// mismas cantidades finales.
func TestCart_TotalInvarianteAlOrdenDeAdds(t *testing.T) {
	menu := menuFixture()

	a := pos.NewCart()
	a.Add("espresso")
	a.Add("espresso")
	a.Add("croissant")

	b := pos.NewCart()
	b.Add("croissant")
	b.Add("espresso")
	b.Add("espresso")

	assert.True(t, a.Total(menu).Equal(b.Total(menu)),
		"mismas cantidades finales ⇒ mismo total, sin importar el orden")
}

// ──────────────────────────────────────────────────────────────────────────────
// Total
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_TotalCarritoVacioEsCero(t *testing.T) {
	c := pos.NewCart()
	assert.True(t, c.Total(menuFixture()).IsZero())
	assert.True(t, c.Total(nil).IsZero(), "snapshot de carta vacío tampoco es error")
}

// 2×X (precio 10) + 1×Y (precio 5) ⇒ total 25,
// ItemCount 3, LineCount 2.
func TestCart_TotalEscenarioDosProductos(t *testing.T) {
	c := pos.NewCart()
	c.Add("espresso")
	c.Add("espresso")
	c.Add("croissant")

	total := c.Total(menuFixture())
	assert.True(t, decimal.NewFromInt(25).Equal(total), "total esperado 25, obtenido %s", total)
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, 2, c.LineCount())
}

// Un ítem eliminado de la carta entre add y checkout aporta 0 al total,
// sin lanzar error.
func TestCart_ItemFueraDeCartaAportaCero(t *testing.T) {
	c := pos.NewCart()
	c.Add("espresso")
	c.Add("descatalogado")
	c.Add("descatalogado")

	total := c.Total(menuFixture())
	assert.True(t, decimal.NewFromInt(10).Equal(total),
		"solo el espresso debe contar; el ítem retirado de la carta aporta 0")
}

func TestCart_RestoreRepoveeContenido(t *testing.T) {
	c := pos.NewCart()
	c.Add("espresso")
	saved := c.Lines()

	c.Clear()
	require.True(t, c.IsEmpty())

	c.Restore(saved)
	assert.Equal(t, saved, c.Lines(), "Restore debe reponer exactamente las líneas guardadas")
}
