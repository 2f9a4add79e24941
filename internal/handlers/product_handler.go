package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-search/internal/filters"
	"product-search/internal/models"
)

// Searcher es la lógica de búsqueda que expone la API de productos
type Searcher interface {
	Search(ctx context.Context, query string, f models.FilterSet) models.SearchResult
	ListAll(ctx context.Context) []models.Product
	GetByCategory(ctx context.Context, category string) []models.Product
	CategoryCounts(ctx context.Context) []models.CategoryCount
}

// SearchRecorder persiste búsquedas y clicks
type SearchRecorder interface {
	Record(ctx context.Context, rec models.SearchRecord) (string, error)
	RecordClick(ctx context.Context, searchID string, req models.ClickRequest) error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

type SearchResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	SearchID string           `json:"searchId"`
}

type ProductHandler struct {
	search   Searcher
	recorder SearchRecorder
}

// NewProductHandler crea el handler. recorder puede ser nil si no hay base de datos.
func NewProductHandler(search Searcher, recorder SearchRecorder) *ProductHandler {
	return &ProductHandler{
		search:   search,
		recorder: recorder,
	}
}

// GET /api/productos
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products := h.search.ListAll(c.Request.Context())
	c.JSON(http.StatusOK, ProductListResponse{Products: products, Total: len(products)})
}

// GET /api/productos/categoria/:categoria
func (h *ProductHandler) GetByCategory(c *gin.Context) {
	category := c.Param("categoria")
	if !models.IsCategory(category) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category"})
		return
	}

	products := h.search.GetByCategory(c.Request.Context(), category)
	c.JSON(http.StatusOK, ProductListResponse{Products: products, Total: len(products)})
}

// GET /api/categorias
func (h *ProductHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categorias": h.search.CategoryCounts(c.Request.Context())})
}

// GET /api/precios
func (h *ProductHandler) ListPriceRanges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"precios": filters.Buckets()})
}

// GET /api/productos/buscar
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	const op = "ProductHandler.SearchProducts"
	log := slog.With("op", op)

	if err := checkParams(c.Request.URL.Query(), searchParams); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindError(err).Error()})
		return
	}
	f, err := q.toFilterSet()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	result := h.search.Search(ctx, q.Busqueda, f)

	resp := SearchResponse{Products: result.Products, Total: result.Total}
	if h.recorder != nil {
		id, err := h.recorder.Record(ctx, models.SearchRecord{
			Term: q.Busqueda,
			Filters: models.SearchFilters{
				PriceRange: q.Precio,
				Category:   q.Categoria,
				Condition:  q.Condicion,
				SortOrder:  q.Ordenar,
			},
			Results: productIDs(result.Products),
			Total:   result.Total,
		})
		if err != nil {
			log.Error("failed to record search", "err", err)
		}
		resp.SearchID = id
	}

	c.JSON(http.StatusOK, resp)
}

func productIDs(products []models.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids
}
