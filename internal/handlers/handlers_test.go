package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-search/internal/models"
	"product-search/internal/repository"
)

type fakeSearcher struct {
	products []models.Product
	query    string
	filters  models.FilterSet
	category string
	searches int
}

func (f *fakeSearcher) Search(_ context.Context, query string, fs models.FilterSet) models.SearchResult {
	f.searches++
	f.query = query
	f.filters = fs
	return models.SearchResult{Products: f.products, Total: len(f.products)}
}

func (f *fakeSearcher) ListAll(context.Context) []models.Product { return f.products }

func (f *fakeSearcher) GetByCategory(_ context.Context, category string) []models.Product {
	f.category = category
	return f.products
}

func (f *fakeSearcher) CategoryCounts(context.Context) []models.CategoryCount {
	return []models.CategoryCount{{Category: models.CategoryBooks, Count: 2}}
}

type fakeRecorder struct {
	records  []models.SearchRecord
	clicks   []models.ClickRequest
	clickIDs []string
	err      error
	clickErr error
}

func (f *fakeRecorder) Record(_ context.Context, rec models.SearchRecord) (string, error) {
	f.records = append(f.records, rec)
	if f.err != nil {
		return "", f.err
	}
	return "507f1f77bcf86cd799439011", nil
}

func (f *fakeRecorder) RecordClick(_ context.Context, id string, req models.ClickRequest) error {
	f.clickIDs = append(f.clickIDs, id)
	f.clicks = append(f.clicks, req)
	return f.clickErr
}

type fakeAnalytics struct {
	limit int
	days  int
	err   error
}

func (f *fakeAnalytics) TopTerms(_ context.Context, limit int) ([]models.TermCount, error) {
	f.limit = limit
	return []models.TermCount{{Term: "laptop", Count: 3}}, f.err
}

func (f *fakeAnalytics) TopProducts(_ context.Context, limit int) ([]models.ProductClicks, error) {
	f.limit = limit
	return []models.ProductClicks{{ProductID: 1, Clicks: 9}}, f.err
}

func (f *fakeAnalytics) Trends(_ context.Context, days int) ([]models.DailyCount, error) {
	f.days = days
	return []models.DailyCount{{Day: "2026-10-15", Count: 4}}, f.err
}

func setupRouter(s Searcher, rec SearchRecorder, an Analytics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ph := NewProductHandler(s, rec)
	th := NewTrackingHandler(rec, an)
	r.GET("/api/productos", ph.ListProducts)
	r.GET("/api/productos/buscar", ph.SearchProducts)
	r.GET("/api/productos/categoria/:categoria", ph.GetByCategory)
	r.GET("/api/categorias", ph.ListCategories)
	r.GET("/api/precios", ph.ListPriceRanges)
	r.POST("/api/busquedas/:id/click", th.RecordClick)
	r.GET("/api/analytics/terminos", th.TopTerms)
	r.GET("/api/analytics/productos", th.TopProducts)
	r.GET("/api/analytics/tendencias", th.Trends)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSearchProductsOK(t *testing.T) {
	s := &fakeSearcher{products: []models.Product{{ProductID: 4, Name: "Laptop", Price: 450}, {ProductID: 9, Name: "Laptop 2", Price: 500}}}
	rec := &fakeRecorder{}
	r := setupRouter(s, rec, nil)

	q := url.Values{}
	q.Set("busqueda", "laptop")
	q.Set("precio", "entre 300 - 500")
	q.Set("categoria", "ELECTRÓNICA")
	q.Set("condicion", "USADO")
	q.Set("ordenar", "precio-desc")
	rr := do(r, http.MethodGet, "/api/productos/buscar?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "507f1f77bcf86cd799439011", resp.SearchID)

	assert.Equal(t, "laptop", s.query)
	assert.Equal(t, models.FilterSet{
		PriceRange: "entre 300 - 500",
		Category:   "ELECTRÓNICA",
		Condition:  "USED",
		SortOrder:  models.SortPriceDesc,
	}, s.filters)

	require.Len(t, rec.records, 1)
	assert.Equal(t, "laptop", rec.records[0].Term)
	assert.Equal(t, []int{4, 9}, rec.records[0].Results)
	assert.Equal(t, "USADO", rec.records[0].Filters.Condition)
}

func TestSearchProductsRecorderFailureStillAnswers(t *testing.T) {
	s := &fakeSearcher{products: []models.Product{{ProductID: 1, Name: "x"}}}
	r := setupRouter(s, &fakeRecorder{err: errors.New("db down")}, nil)

	rr := do(r, http.MethodGet, "/api/productos/buscar", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Empty(t, resp.SearchID)
}

func TestSearchProductsWithoutRecorder(t *testing.T) {
	s := &fakeSearcher{}
	r := setupRouter(s, nil, nil)
	rr := do(r, http.MethodGet, "/api/productos/buscar?busqueda=mouse", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, s.searches)
}

func TestSearchProductsValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"UnknownParam", "q=laptop"},
		{"RepeatedParam", "busqueda=a&busqueda=b"},
		{"TooLong", "busqueda=" + strings.Repeat("a", 101)},
		{"BadBucket", url.Values{"precio": {"entre 1 - 2"}}.Encode()},
		{"BadCategory", "categoria=Muebles"},
		{"BadCondition", "condicion=roto"},
		{"BadSort", "ordenar=nombre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSearcher{}
			r := setupRouter(s, &fakeRecorder{}, nil)
			rr := do(r, http.MethodGet, "/api/productos/buscar?"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, 0, s.searches)
		})
	}
}

func TestSearchProductsTooLongMessage(t *testing.T) {
	r := setupRouter(&fakeSearcher{}, nil, nil)
	rr := do(r, http.MethodGet, "/api/productos/buscar?busqueda="+strings.Repeat("a", 101), "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "busqueda must be at most 100 characters", resp.Error)
}

func TestBindError(t *testing.T) {
	plain := bindError(errors.New("invalid character 'x' looking for beginning of value"))
	assert.Empty(t, plain.Field)
	assert.Equal(t, "invalid character 'x' looking for beginning of value", plain.Message)

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":0,"posicion":-1}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.ClickRequest
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)
	verr := bindError(err)
	assert.Equal(t, "productId", verr.Field)
	assert.Equal(t, "productId is required", verr.Message)
}

func TestSearchProductsMaxLengthCountsCharacters(t *testing.T) {
	s := &fakeSearcher{}
	r := setupRouter(s, nil, nil)
	q := url.Values{"busqueda": {strings.Repeat("ñ", 100)}}
	rr := do(r, http.MethodGet, "/api/productos/buscar?"+q.Encode(), "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListProducts(t *testing.T) {
	s := &fakeSearcher{products: []models.Product{{ProductID: 1}, {ProductID: 2}}}
	rr := do(setupRouter(s, nil, nil), http.MethodGet, "/api/productos", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ProductListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestGetByCategory(t *testing.T) {
	s := &fakeSearcher{}
	r := setupRouter(s, nil, nil)

	rr := do(r, http.MethodGet, "/api/productos/categoria/"+url.PathEscape("ELECTRÓNICA"), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ELECTRÓNICA", s.category)

	rr = do(r, http.MethodGet, "/api/productos/categoria/muebles", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListCategories(t *testing.T) {
	rr := do(setupRouter(&fakeSearcher{}, nil, nil), http.MethodGet, "/api/categorias", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"categoria":"LIBROS"`)
}

func TestListPriceRanges(t *testing.T) {
	rr := do(setupRouter(&fakeSearcher{}, nil, nil), http.MethodGet, "/api/precios", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `{"etiqueta":"entre 100 - 300","min":100,"max":300}`)
	assert.Contains(t, rr.Body.String(), `{"etiqueta":"más de 500","min":500}`)
}

func TestRecordClick(t *testing.T) {
	const id = "507f1f77bcf86cd799439011"

	t.Run("Created", func(t *testing.T) {
		rec := &fakeRecorder{}
		rr := do(setupRouter(&fakeSearcher{}, rec, nil), http.MethodPost, "/api/busquedas/"+id+"/click", `{"productId":3,"posicion":1}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, []string{id}, rec.clickIDs)
		assert.Equal(t, models.ClickRequest{ProductID: 3, Position: 1}, rec.clicks[0])
	})

	t.Run("BadBody", func(t *testing.T) {
		rec := &fakeRecorder{}
		rr := do(setupRouter(&fakeSearcher{}, rec, nil), http.MethodPost, "/api/busquedas/"+id+"/click", `{"posicion":1}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, rec.clicks)
	})

	errs := map[error]int{
		repository.ErrInvalidID: http.StatusBadRequest,
		repository.ErrNotFound:  http.StatusNotFound,
		errors.New("boom"):      http.StatusInternalServerError,
	}
	for err, status := range errs {
		t.Run(err.Error(), func(t *testing.T) {
			rec := &fakeRecorder{clickErr: err}
			rr := do(setupRouter(&fakeSearcher{}, rec, nil), http.MethodPost, "/api/busquedas/"+id+"/click", `{"productId":3}`)
			assert.Equal(t, status, rr.Code)
		})
	}

	t.Run("NoDatabase", func(t *testing.T) {
		rr := do(setupRouter(&fakeSearcher{}, nil, nil), http.MethodPost, "/api/busquedas/"+id+"/click", `{"productId":3}`)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestAnalytics(t *testing.T) {
	an := &fakeAnalytics{}
	r := setupRouter(&fakeSearcher{}, nil, an)

	rr := do(r, http.MethodGet, "/api/analytics/terminos", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, defaultLimit, an.limit)
	assert.Contains(t, rr.Body.String(), `"termino":"laptop"`)

	rr = do(r, http.MethodGet, "/api/analytics/productos?limit=5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, an.limit)

	rr = do(r, http.MethodGet, "/api/analytics/tendencias?dias=30", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 30, an.days)

	for _, target := range []string{
		"/api/analytics/terminos?limit=0",
		"/api/analytics/productos?limit=51",
		"/api/analytics/tendencias?dias=abc",
	} {
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, target, "").Code, target)
	}
}

func TestAnalyticsErrors(t *testing.T) {
	r := setupRouter(&fakeSearcher{}, nil, &fakeAnalytics{err: errors.New("boom")})
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, "/api/analytics/terminos", "").Code)

	r = setupRouter(&fakeSearcher{}, nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/analytics/tendencias", "").Code)
}
