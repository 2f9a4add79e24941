package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"product-search/internal/filters"
	"product-search/internal/models"
	"product-search/internal/normalize"
)

var searchParams = map[string]bool{
	"busqueda":  true,
	"precio":    true,
	"categoria": true,
	"condicion": true,
	"ordenar":   true,
}

// SearchQuery son los parámetros de GET /api/productos/buscar
type SearchQuery struct {
	Busqueda  string `form:"busqueda" binding:"max=100"`
	Precio    string `form:"precio"`
	Categoria string `form:"categoria"`
	Condicion string `form:"condicion"`
	Ordenar   string `form:"ordenar"`
}

// checkParams rechaza nombres desconocidos y parámetros repetidos
func checkParams(values url.Values, allowed map[string]bool) error {
	for name, vals := range values {
		if !allowed[name] {
			return &ValidationError{Field: name, Message: fmt.Sprintf("unknown parameter %q", name)}
		}
		if len(vals) > 1 {
			return &ValidationError{Field: name, Message: fmt.Sprintf("parameter %q must be given once", name)}
		}
	}
	return nil
}

// toFilterSet valida los valores y los traduce a un FilterSet
func (q SearchQuery) toFilterSet() (models.FilterSet, error) {
	var f models.FilterSet

	if q.Precio != "" {
		if _, ok := filters.LookupBucket(q.Precio); !ok {
			return f, &ValidationError{Field: "precio", Message: fmt.Sprintf("invalid price range %q", q.Precio)}
		}
		f.PriceRange = q.Precio
	}

	if q.Categoria != "" {
		if !models.IsCategory(q.Categoria) {
			return f, &ValidationError{Field: "categoria", Message: fmt.Sprintf("invalid category %q", q.Categoria)}
		}
		f.Category = q.Categoria
	}

	if q.Condicion != "" {
		cond, ok := normalize.ConditionLabel(q.Condicion)
		if !ok {
			return f, &ValidationError{Field: "condicion", Message: fmt.Sprintf("invalid condition %q", q.Condicion)}
		}
		f.Condition = string(cond)
	}

	switch models.SortOrder(q.Ordenar) {
	case models.SortNone, models.SortPriceAsc, models.SortPriceDesc:
		f.SortOrder = models.SortOrder(q.Ordenar)
	default:
		return f, &ValidationError{Field: "ordenar", Message: fmt.Sprintf("invalid sort order %q", q.Ordenar)}
	}

	return f, nil
}

// ValidationError representa un error de validación
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// fieldNames mapea campos de struct a su nombre en query o JSON
var fieldNames = map[string]string{
	"Busqueda":  "busqueda",
	"ProductID": "productId",
	"Position":  "posicion",
}

// bindError traduce el error de ShouldBind* a un ValidationError con el
// campo y la regla que fallaron.
func bindError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := verrs[0]
	field, ok := fieldNames[fe.Field()]
	if !ok {
		field = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	case "max":
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param())}
	case "gt", "gte":
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())}
	}
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s failed %s validation", field, fe.Tag())}
}
