package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/barstock-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerción numérica
// ──────────────────────────────────────────────────────────────────────────────

func TestCoerce_ComaDecimal(t *testing.T) {
	assert.True(t, dec("12.5").Equal(stock.Coerce("12,5")),
		"la coma decimal debe sustituirse por punto antes de parsear")
}

func TestCoerce_TextoInvalido_EsCero(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(stock.Coerce("abc")))
	assert.True(t, decimal.Zero.Equal(stock.Coerce(nil)))
	assert.True(t, decimal.Zero.Equal(stock.Coerce(map[string]any{})))
}

func TestCoerce_Numeros(t *testing.T) {
	assert.True(t, dec("3.5").Equal(stock.Coerce(3.5)))
	assert.True(t, dec("7").Equal(stock.Coerce(7)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge disperso
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad central: las claves no tocadas por el patch conservan su valor y
// las tocadas toman el valor coaccionado.
func TestPatch_Apply_ConservaClavesNoTocadas(t *testing.T) {
	current := stock.ByLocation{
		"Rest":    dec("5"),
		"Almacén": dec("3"),
		"B1":      dec("0"),
	}
	patch := stock.NewPatch(map[string]any{"Rest": "7,5"})

	merged := patch.Apply(current)

	assert.True(t, dec("7.5").Equal(merged["Rest"]))
	assert.True(t, dec("3").Equal(merged["Almacén"]), "Almacén no estaba en el patch: conserva su valor")
	qty, ok := merged["B1"]
	require.True(t, ok, "el cero explícito de B1 debe sobrevivir al merge")
	assert.True(t, decimal.Zero.Equal(qty))
}

func TestPatch_Apply_SobreMapaVacio(t *testing.T) {
	patch := stock.NewPatch(map[string]any{"Nevera": 4.0, "Rest": "no-numérico"})

	merged := patch.Apply(nil)

	assert.True(t, dec("4").Equal(merged["Nevera"]))
	assert.True(t, decimal.Zero.Equal(merged["Rest"]), "valor no parseable queda en 0")
}

// El patch acepta cualquier nombre de ubicación: merge permisivo, sin whitelist.
func TestPatch_ClavesArbitrarias(t *testing.T) {
	merged := stock.NewPatch(map[string]any{"Trastero nuevo": 1.0}).Apply(stock.ByLocation{})
	_, ok := merged["Trastero nuevo"]
	assert.True(t, ok)
}

func TestPatch_Apply_NoMutaElOriginal(t *testing.T) {
	current := stock.ByLocation{"Rest": dec("5")}
	_ = stock.NewPatch(map[string]any{"Rest": 9.0}).Apply(current)
	assert.True(t, dec("5").Equal(current["Rest"]))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación set/add
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_Set_DevuelveLaEntrada(t *testing.T) {
	got := stock.Reconcile(dec("10"), dec("2"), stock.ModeSet)
	assert.True(t, dec("2").Equal(got))
}

func TestReconcile_Add_SumaSobreElActual(t *testing.T) {
	got := stock.Reconcile(dec("10"), dec("2.5"), stock.ModeAdd)
	assert.True(t, dec("12.5").Equal(got))
}

func TestReconcile_Add_SobreUbicacionAusente(t *testing.T) {
	var m stock.ByLocation
	got := stock.Reconcile(m.Get(stock.AlmacenLocation), dec("4"), stock.ModeAdd)
	assert.True(t, dec("4").Equal(got), "una ubicación ausente cuenta como 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilidades del mapa
// ──────────────────────────────────────────────────────────────────────────────

func TestByLocation_Total(t *testing.T) {
	m := stock.ByLocation{"Rest": dec("1.5"), "B1": dec("2"), "B2": dec("0")}
	assert.True(t, dec("3.5").Equal(m.Total()))
	assert.True(t, decimal.Zero.Equal(stock.ByLocation(nil).Total()))
}
