// Package export convierte registros históricos en CSV compatible con las
// hojas de cálculo que ya consumen los encargados del bar. El contrato de
// salida (separador, comillas, coma decimal, BOM, cabeceras de categoría) es
// exacto: cualquier cambio rompe las plantillas existentes.
package export

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/barstock-api/internal/domain/entity"
)

const (
	separator = ";"
	bom       = "\uFEFF"

	// uncategorized agrupa los artículos sin categoría al final del orden;
	// solo afecta a la ordenación, nunca imprime cabecera propia.
	uncategorized = "Uncategorized"

	// embalajesMark marca la categoría de embalajes: sin importe monetario y
	// cantidades enteras en el export.
	embalajesMark = "embalajes"
)

// DefaultCategoryOrder es el orden de categorías de la carta del bar, el
// mismo que usa la web. Las categorías fuera de la lista quedan después de
// todas las listadas.
var DefaultCategoryOrder = []string{
	"🧊 Vodka",
	"🥥 Ron",
	"🥃 Whisky / Bourbon",
	"🍸 Ginebra",
	"🌵 Tequila",
	"🔥 Mezcal",
	"🍯 Licores y Aperitivos",
	"🍷 Vermut",
	"🥂 Vinos y espumosos",
	"🥤Refrescos y agua",
	"🍻 Cerveza",
}

// DefaultLocations es el orden preferente de ubicaciones en las columnas de
// un snapshot. Solo aparecen las que alguna línea del registro usa.
var DefaultLocations = []string{
	"Rest",
	"Nevera",
	"B1",
	"Ofice B1",
	"B2",
	"Ofice B2",
	"B3",
	"Ofice B3",
	"B4",
	"Ofice B4",
	"Almacén",
}

// Config permite sustituir las listas de categorías y ubicaciones en tests.
type Config struct {
	CategoryOrder []string
	Locations     []string
}

// DefaultConfig devuelve la configuración de producción.
func DefaultConfig() Config {
	return Config{CategoryOrder: DefaultCategoryOrder, Locations: DefaultLocations}
}

// Formatter serializa un InventoryRecord a CSV. El esquema de columnas lo
// decide el tipo del registro (snapshot o analysis) una sola vez.
type Formatter struct {
	cfg Config
}

// NewFormatter construye el formatter con la configuración dada.
func NewFormatter(cfg Config) *Formatter {
	if cfg.CategoryOrder == nil {
		cfg.CategoryOrder = DefaultCategoryOrder
	}
	if cfg.Locations == nil {
		cfg.Locations = DefaultLocations
	}
	return &Formatter{cfg: cfg}
}

// Format genera el texto CSV completo del registro, con BOM inicial para que
// Excel detecte UTF-8.
func (f *Formatter) Format(record *entity.InventoryRecord) string {
	items := f.sortItems(record.Items)

	var b strings.Builder
	b.WriteString(bom)

	if record.Type == entity.RecordTypeAnalysis {
		f.writeAnalysis(&b, items)
	} else {
		f.writeSnapshot(&b, record.Items, items)
	}
	return b.String()
}

// sortItems ordena por categoría (según la lista de prioridad, no listadas al
// final) y dentro de cada categoría alfabéticamente por nombre, sin distinguir
// mayúsculas y con comparación según la colación del español.
func (f *Formatter) sortItems(items []entity.RecordItem) []entity.RecordItem {
	sorted := make([]entity.RecordItem, len(items))
	copy(sorted, items)

	coll := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		idxA := f.categoryIndex(sorted[i].Category)
		idxB := f.categoryIndex(sorted[j].Category)
		if idxA != idxB {
			if idxA == -1 {
				return false
			}
			if idxB == -1 {
				return true
			}
			return idxA < idxB
		}
		return coll.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

func (f *Formatter) categoryIndex(category string) int {
	if category == "" {
		category = uncategorized
	}
	for i, c := range f.cfg.CategoryOrder {
		if c == category {
			return i
		}
	}
	return -1
}

// writeAnalysis emite el esquema de consumo: cada campo numérico opcional se
// muestra como 0,0 cuando falta. Las celdas numéricas van sin comillas.
func (f *Formatter) writeAnalysis(b *strings.Builder, items []entity.RecordItem) {
	b.WriteString("Articulo" + separator + "Stock Actual" + separator + "En Pedidos" + separator + "Stock Inicial Total" + separator + "Consumo\n")

	lastCategory := ""
	for _, item := range items {
		if item.Category != "" && item.Category != lastCategory {
			b.WriteString("\n\"" + item.Category + "\"\n")
			lastCategory = item.Category
		}
		b.WriteString("\"" + item.Name + "\"")
		b.WriteString(separator + optFixed1(item.CurrentStock))
		b.WriteString(separator + optFixed1(item.PendingStock))
		b.WriteString(separator + optFixed1(item.InitialStock))
		b.WriteString(separator + optFixed1(item.Consumption))
		b.WriteString("\n")
	}
}

// writeSnapshot emite el esquema de inventario por ubicación. Solo aparecen
// las ubicaciones preferidas que algún artículo del registro usa; cada fila
// cierra con el total del artículo y todas sus celdas van entre comillas.
func (f *Formatter) writeSnapshot(b *strings.Builder, all, sorted []entity.RecordItem) {
	locations := f.usedLocations(all)

	b.WriteString("Articulo" + separator + "P.U. s/IVA" + separator + "VALOR TOTAL")
	for _, loc := range locations {
		b.WriteString(separator + strings.ToUpper(loc))
	}
	b.WriteString(separator + "Total\n")

	lastCategory := ""
	for _, item := range sorted {
		if item.Category != "" && item.Category != lastCategory {
			b.WriteString("\n\"" + item.Category + "\"\n")
			lastCategory = item.Category
		}

		isEmbalaje := strings.Contains(strings.ToLower(item.Category), embalajesMark)
		totalStock := item.StockByLocationSnapshot.Total()
		price := decimal.Zero
		if item.PricePerUnit != nil {
			price = *item.PricePerUnit
		}
		totalValue := price.Mul(totalStock)

		priceCell, valueCell := "-", "-"
		if !isEmbalaje {
			priceCell = euros(price)
			valueCell = euros(totalValue)
		}

		b.WriteString("\"" + item.Name + "\"")
		b.WriteString(separator + "\"" + priceCell + "\"")
		b.WriteString(separator + "\"" + valueCell + "\"")

		for _, loc := range locations {
			qty, ok := item.StockByLocationSnapshot[loc]
			cell := "0"
			if ok {
				cell = quantity(qty, isEmbalaje)
			}
			b.WriteString(separator + "\"" + cell + "\"")
		}

		b.WriteString(separator + "\"" + quantity(totalStock, isEmbalaje) + "\"")
		b.WriteString("\n")
	}
}

// usedLocations filtra la lista preferida dejando las ubicaciones con al
// menos una línea que registre stock allí, conservando el orden preferente.
func (f *Formatter) usedLocations(items []entity.RecordItem) []string {
	used := make(map[string]bool)
	for _, item := range items {
		for loc := range item.StockByLocationSnapshot {
			used[loc] = true
		}
	}
	var out []string
	for _, loc := range f.cfg.Locations {
		if used[loc] {
			out = append(out, loc)
		}
	}
	return out
}

// optFixed1 renderiza un numérico opcional con un decimal y coma; ausente = 0,0.
func optFixed1(d *decimal.Decimal) string {
	if d == nil {
		return "0,0"
	}
	return fixed1(*d)
}

// fixed1 renderiza con un decimal y coma como separador (3.5 → "3,5").
func fixed1(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(1), ".", ",", 1)
}

// euros renderiza un importe con dos decimales, coma y el sufijo " €".
func euros(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + " €"
}

// quantity renderiza una cantidad de snapshot: entero redondeado para
// embalajes, un decimal con coma para el resto.
func quantity(d decimal.Decimal, isEmbalaje bool) string {
	if isEmbalaje {
		return d.Round(0).String()
	}
	return fixed1(d)
}
