package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"product-search/internal/demo"
	"product-search/internal/models"
	"product-search/internal/normalize"
	"product-search/internal/publications"
)

// ExternalCatalog es el catálogo HTTP externo (nivel 1)
type ExternalCatalog interface {
	FetchProducts(ctx context.Context, f models.SourceFilters) (models.RawBatch, error)
}

// LocalStore es la colección local de productos (nivel 2)
type LocalStore interface {
	FindAll(ctx context.Context) (models.RawBatch, error)
}

// Tier identifica la fuente que resolvió una consulta
type Tier string

const (
	TierExternal Tier = "external"
	TierLocal    Tier = "local"
	TierDemo     Tier = "demo"
)

// ProductsService obtiene productos normalizados probando, en orden, el catálogo
// externo, la colección local y el catálogo de demostración. Nunca devuelve error:
// cada falla se registra y se pasa al siguiente nivel.
type ProductsService struct {
	external ExternalCatalog
	local    LocalStore
	log      *slog.Logger
}

// NewProductsService crea el gateway. external y local pueden ser nil para
// desactivar su nivel; con log nil se usa slog.Default().
func NewProductsService(external ExternalCatalog, local LocalStore, log *slog.Logger) *ProductsService {
	if log == nil {
		log = slog.Default()
	}
	return &ProductsService{
		external: external,
		local:    local,
		log:      log.With("component", "ProductsService"),
	}
}

// GetProducts devuelve los productos que cumplen f. El resultado nunca es nil.
func (s *ProductsService) GetProducts(ctx context.Context, f models.SourceFilters) []models.Product {
	products, _ := s.getProducts(ctx, f)
	return products
}

func (s *ProductsService) getProducts(ctx context.Context, f models.SourceFilters) ([]models.Product, Tier) {
	if products, ok := s.fromExternal(ctx, f); ok {
		return products, TierExternal
	}
	if products, ok := s.fromLocal(ctx, f); ok {
		return products, TierLocal
	}
	s.log.Info("serving demo catalog")
	return filterSource(demo.Products(), f), TierDemo
}

func (s *ProductsService) fromExternal(ctx context.Context, f models.SourceFilters) ([]models.Product, bool) {
	const op = "ProductsService.fromExternal"
	log := s.log.With("op", op)

	if s.external == nil {
		return nil, false
	}

	batch, err := s.external.FetchProducts(ctx, f)
	if err != nil {
		if errors.Is(err, publications.ErrMalformed) {
			log.Error("unexpected catalog payload, falling back", "err", err)
		} else {
			log.Warn("external catalog unavailable, falling back", "err", err)
		}
		return nil, false
	}
	return s.normalizeAndFilter(log, batch, f)
}

func (s *ProductsService) fromLocal(ctx context.Context, f models.SourceFilters) ([]models.Product, bool) {
	const op = "ProductsService.fromLocal"
	log := s.log.With("op", op)

	if s.local == nil {
		return nil, false
	}

	batch, err := s.local.FindAll(ctx)
	if err != nil {
		log.Warn("local product collection unavailable, falling back", "err", err)
		return nil, false
	}
	return s.normalizeAndFilter(log, batch, f)
}

func (s *ProductsService) normalizeAndFilter(log *slog.Logger, batch models.RawBatch, f models.SourceFilters) ([]models.Product, bool) {
	products, dropped := normalize.Products(batch.Products)
	if skipped := dropped + batch.Skipped; skipped > 0 {
		log.Error("malformed records were skipped",
			"undecodable", batch.Skipped,
			"missingFields", dropped,
			"received", len(batch.Products)+batch.Skipped,
		)
	}
	if len(products) == 0 {
		log.Warn("source returned no usable products, falling back")
		return nil, false
	}
	return filterSource(products, f), true
}

// filterSource aplica rango de precio inclusivo y categoría/condición exactas
// sin distinguir mayúsculas.
func filterSource(products []models.Product, f models.SourceFilters) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.PriceMin != nil && p.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && p.Price > *f.PriceMax {
			continue
		}
		if f.Category != "" && !strings.EqualFold(string(p.Category), f.Category) {
			continue
		}
		if f.Condition != "" && !strings.EqualFold(string(p.Condition), f.Condition) {
			continue
		}
		out = append(out, p)
	}
	return out
}
