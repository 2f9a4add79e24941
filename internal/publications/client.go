// Package publications es el cliente HTTP del catálogo externo de publicaciones.
package publications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"product-search/internal/cache"
	"product-search/internal/models"
)

var (
	// ErrUnavailable agrupa fallas esperables: red, timeout, status no 2xx, lista vacía.
	ErrUnavailable = errors.New("catalog unavailable")
	// ErrMalformed indica un payload que no se pudo interpretar.
	ErrMalformed = errors.New("catalog payload malformed")
)

const (
	defaultTimeout  = 8 * time.Second
	defaultPageSize = 100
	maxBodyBytes    = 10 << 20
)

type Options struct {
	URL            string
	Token          string
	Timeout        time.Duration
	PageSize       int
	CacheTTL       time.Duration
	ForwardFilters bool
	HTTPClient     *http.Client
}

type Client struct {
	endpoint       string
	token          string
	pageSize       int
	forwardFilters bool
	http           *http.Client
	cache          *cache.Cache[models.RawBatch]
}

func NewClient(opts Options) (*Client, error) {
	endpoint := strings.TrimSpace(opts.URL)
	if endpoint == "" {
		return nil, errors.New("catalog URL is required")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	c := &Client{
		endpoint:       endpoint,
		token:          strings.TrimSpace(opts.Token),
		pageSize:       pageSize,
		forwardFilters: opts.ForwardFilters,
		http:           hc,
	}
	if opts.CacheTTL > 0 {
		c.cache = cache.New[models.RawBatch](opts.CacheTTL, time.Minute)
	}
	return c, nil
}

// Close libera el caché de páginas
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}

// FetchProducts pide una página de productos crudos al catálogo externo
func (c *Client) FetchProducts(ctx context.Context, f models.SourceFilters) (models.RawBatch, error) {
	const op = "publications.FetchProducts"

	u := c.buildURL(f)
	if c.cache != nil {
		if cached, ok := c.cache.Get(u); ok {
			return cached, nil
		}
	}

	body, err := c.doGET(ctx, u)
	if err != nil {
		return models.RawBatch{}, fmt.Errorf("%s: %w", op, err)
	}

	batch, err := ParsePayload(body)
	if err != nil {
		return models.RawBatch{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(batch.Products) == 0 {
		if batch.Skipped > 0 {
			return models.RawBatch{}, fmt.Errorf("%s: %w: none of %d records could be decoded", op, ErrMalformed, batch.Skipped)
		}
		return models.RawBatch{}, fmt.Errorf("%s: %w: empty product list", op, ErrUnavailable)
	}

	if c.cache != nil {
		c.cache.Set(u, batch)
	}
	return batch, nil
}

func (c *Client) buildURL(f models.SourceFilters) string {
	q := url.Values{}
	if f.PriceMin != nil {
		q.Set("priceMin", strconv.FormatFloat(*f.PriceMin, 'f', -1, 64))
	}
	if f.PriceMax != nil {
		q.Set("priceMax", strconv.FormatFloat(*f.PriceMax, 'f', -1, 64))
	}
	if c.forwardFilters {
		if f.Category != "" {
			q.Set("category", f.Category)
		}
		if f.Condition != "" {
			q.Set("condition", f.Condition)
		}
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = c.pageSize
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + q.Encode()
}

func (c *Client) doGET(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http status %d", ErrUnavailable, resp.StatusCode)
	}
	return b, nil
}

// ParsePayload acepta un arreglo JSON o un objeto que lo envuelve bajo
// "data", "products" o "publications". Cada elemento se decodifica por
// separado; los que no calzan con RawProduct se cuentan en Skipped.
func ParsePayload(raw []byte) (models.RawBatch, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return models.RawBatch{}, fmt.Errorf("%w: empty body", ErrUnavailable)
	}

	if raw[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return models.RawBatch{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return decodeRecords(arr), nil
	}

	var wrapped struct {
		Data         []json.RawMessage `json:"data"`
		Products     []json.RawMessage `json:"products"`
		Publications []json.RawMessage `json:"publications"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return models.RawBatch{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	switch {
	case wrapped.Data != nil:
		return decodeRecords(wrapped.Data), nil
	case wrapped.Products != nil:
		return decodeRecords(wrapped.Products), nil
	case wrapped.Publications != nil:
		return decodeRecords(wrapped.Publications), nil
	}
	return models.RawBatch{}, fmt.Errorf("%w: no product list in payload", ErrMalformed)
}

func decodeRecords(records []json.RawMessage) models.RawBatch {
	batch := models.RawBatch{Products: make([]models.RawProduct, 0, len(records))}
	for _, rec := range records {
		var p models.RawProduct
		if err := json.Unmarshal(rec, &p); err != nil {
			batch.Skipped++
			continue
		}
		batch.Products = append(batch.Products, p)
	}
	return batch
}
