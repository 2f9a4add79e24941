// Package filters aplica búsqueda de texto, filtros y orden sobre una lista
// de productos ya obtenida. No hace I/O ni modifica la lista de entrada.
package filters

import (
	"cmp"
	"slices"
	"strings"

	"product-search/internal/models"
)

// PriceBucket es un rango de precio con nombre.
// El primero incluye price <= High, el último price > Low y el resto Low < price <= High.
type PriceBucket struct {
	Label string  `json:"etiqueta"`
	Low   float64 `json:"min"`
	High  float64 `json:"max,omitempty"`
	open  bool
}

var buckets = []PriceBucket{
	{Label: "hasta 50", Low: 0, High: 50},
	{Label: "entre 50 - 100", Low: 50, High: 100},
	{Label: "entre 100 - 300", Low: 100, High: 300},
	{Label: "entre 300 - 500", Low: 300, High: 500},
	{Label: "más de 500", Low: 500, open: true},
}

// Buckets devuelve los rangos de precio disponibles
func Buckets() []PriceBucket {
	return slices.Clone(buckets)
}

// LookupBucket busca un rango por su etiqueta exacta
func LookupBucket(label string) (PriceBucket, bool) {
	for i, b := range buckets {
		if b.Label == label {
			return buckets[i], true
		}
	}
	return PriceBucket{}, false
}

// Bounds devuelve un rango inclusivo que cubre el bucket, apto para pedir a
// una fuente. nil significa sin límite de ese lado.
func (b PriceBucket) Bounds() (low, high *float64) {
	if b.open || b.Low > 0 {
		l := b.Low
		low = &l
	}
	if !b.open {
		h := b.High
		high = &h
	}
	return low, high
}

// Contains indica si price pertenece al rango
func (b PriceBucket) Contains(price float64) bool {
	switch {
	case b.open:
		return price > b.Low
	case b.Low <= 0:
		return price <= b.High
	default:
		return price > b.Low && price <= b.High
	}
}

// Apply filtra products por query (substring sin distinguir mayúsculas sobre el
// nombre) y por cada filtro presente, y ordena por precio si se pidió.
// El orden es estable: productos con el mismo precio conservan su orden de origen.
func Apply(products []models.Product, query string, f models.FilterSet) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	bucket, hasBucket := LookupBucket(f.PriceRange)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if hasBucket && !bucket.Contains(p.Price) {
			continue
		}
		if f.PriceMin != nil && p.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && p.Price > *f.PriceMax {
			continue
		}
		if f.Category != "" && string(p.Category) != f.Category {
			continue
		}
		if f.Condition != "" && string(p.Condition) != f.Condition {
			continue
		}
		out = append(out, p)
	}

	switch f.SortOrder {
	case models.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}
	return out
}
