package services

import (
	"context"

	"product-search/internal/filters"
	"product-search/internal/models"
)

// ProductSource es lo que SearchService necesita del gateway
type ProductSource interface {
	GetProducts(ctx context.Context, f models.SourceFilters) []models.Product
}

// SearchService compone el gateway con el motor de filtros
type SearchService struct {
	source ProductSource
}

func NewSearchService(source ProductSource) *SearchService {
	return &SearchService{source: source}
}

// Search obtiene productos con los filtros gruesos y aplica texto, filtros y orden.
// El rango de precio pedido a la fuente cubre el bucket; el límite exacto lo aplica filters.Apply.
func (s *SearchService) Search(ctx context.Context, query string, f models.FilterSet) models.SearchResult {
	sf := models.SourceFilters{
		PriceMin:  f.PriceMin,
		PriceMax:  f.PriceMax,
		Category:  f.Category,
		Condition: f.Condition,
	}
	if bucket, ok := filters.LookupBucket(f.PriceRange); ok {
		low, high := bucket.Bounds()
		sf.PriceMin = tighter(sf.PriceMin, low, func(a, b float64) bool { return a > b })
		sf.PriceMax = tighter(sf.PriceMax, high, func(a, b float64) bool { return a < b })
	}
	products := s.source.GetProducts(ctx, sf)

	out := filters.Apply(products, query, f)
	return models.SearchResult{Products: out, Total: len(out)}
}

// ListAll devuelve todos los productos sin filtros
func (s *SearchService) ListAll(ctx context.Context) []models.Product {
	return s.source.GetProducts(ctx, models.SourceFilters{})
}

// GetByCategory devuelve los productos de una categoría
func (s *SearchService) GetByCategory(ctx context.Context, category string) []models.Product {
	return s.source.GetProducts(ctx, models.SourceFilters{Category: category})
}

// CategoryCounts cuenta los productos disponibles por categoría canónica.
// Las categorías sin productos aparecen con cero.
func (s *SearchService) CategoryCounts(ctx context.Context) []models.CategoryCount {
	counts := make(map[models.Category]int)
	for _, p := range s.ListAll(ctx) {
		counts[p.Category]++
	}

	out := make([]models.CategoryCount, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		out = append(out, models.CategoryCount{Category: c, Count: counts[c]})
	}
	return out
}

// tighter devuelve el límite más restrictivo entre a y b según better
func tighter(a, b *float64, better func(x, y float64) bool) *float64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case better(*b, *a):
		return b
	}
	return a
}
