package models

// SortOrder define el orden explícito del resultado
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "precio-asc"
	SortPriceDesc SortOrder = "precio-desc"
)

// FilterSet agrupa las restricciones opcionales de una búsqueda.
// PriceRange es la etiqueta de un rango de precio ("hasta 50", "entre 50 - 100", ...).
type FilterSet struct {
	PriceMin   *float64
	PriceMax   *float64
	PriceRange string
	Category   string
	Condition  string
	SortOrder  SortOrder
}

// SourceFilters son los filtros que entiende el gateway de productos
type SourceFilters struct {
	PriceMin  *float64
	PriceMax  *float64
	Category  string
	Condition string
	Page      int
	PageSize  int
}

// SearchResult es la respuesta de una búsqueda
type SearchResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
