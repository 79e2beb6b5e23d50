package stock

import (
	"strings"

	"github.com/shopspring/decimal"
)

// El contrato del API y las columnas jsonb transportan cantidades y precios
// como números JSON, no como cadenas.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// AlmacenLocation es la ubicación fija sobre la que opera la actualización
// masiva de stock (PUT /api/inventory).
const AlmacenLocation = "Almacén"

// ByLocation es el mapa disperso ubicación → cantidad de un artículo.
// La ausencia de una clave significa "sin stock registrado en esa ubicación",
// que no es lo mismo que un cero explícito. Es el único contenedor canónico:
// cualquier representación alternativa del almacén (jsonb, objeto plano) se
// normaliza a este tipo en la frontera de persistencia.
type ByLocation map[string]decimal.Decimal

// Get devuelve la cantidad registrada en una ubicación, o cero si no existe.
func (m ByLocation) Get(location string) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return m[location]
}

// Total suma las cantidades de todas las ubicaciones (ausentes = 0).
func (m ByLocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, qty := range m {
		total = total.Add(qty)
	}
	return total
}

// Clone copia el mapa (los valores decimal son inmutables).
func (m ByLocation) Clone() ByLocation {
	if m == nil {
		return nil
	}
	out := make(ByLocation, len(m))
	for loc, qty := range m {
		out[loc] = qty
	}
	return out
}

// Patch es una actualización parcial del mapa de stock: solo las claves
// presentes se tocan; el resto del mapa conserva su valor anterior.
// Nunca debe aplicarse reemplazando el documento completo.
type Patch map[string]decimal.Decimal

// NewPatch construye un Patch a partir de los valores crudos del cliente,
// aplicando la política de coerción numérica: una coma decimal en texto se
// sustituye por punto antes de parsear y todo valor no parseable queda en 0.
// Las claves se aceptan tal cual llegan (merge permisivo, sin whitelist).
func NewPatch(raw map[string]any) Patch {
	if raw == nil {
		return nil
	}
	p := make(Patch, len(raw))
	for loc, val := range raw {
		p[loc] = Coerce(val)
	}
	return p
}

// Apply mezcla el patch sobre el mapa actual y devuelve el resultado.
// Las claves no tocadas quedan intactas; las tocadas toman el valor coaccionado.
func (p Patch) Apply(current ByLocation) ByLocation {
	merged := current.Clone()
	if merged == nil {
		merged = make(ByLocation, len(p))
	}
	for loc, qty := range p {
		merged[loc] = qty
	}
	return merged
}

// Coerce normaliza un valor crudo (número o texto) a decimal.
// "12,5" → 12.5; valores no numéricos → 0.
func Coerce(val any) decimal.Decimal {
	switch v := val.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Mode indica la semántica de una entrada de reconciliación masiva.
type Mode string

const (
	ModeSet Mode = "set" // reemplaza la cantidad actual
	ModeAdd Mode = "add" // incrementa la cantidad actual
)

// Reconcile calcula la nueva cantidad para una ubicación según el modo:
// "set" devuelve la entrada tal cual, "add" suma la entrada al valor actual.
// Un modo desconocido se comporta como "set" (valor de entrada).
func Reconcile(current, input decimal.Decimal, mode Mode) decimal.Decimal {
	if mode == ModeAdd {
		return current.Add(input)
	}
	return input
}
