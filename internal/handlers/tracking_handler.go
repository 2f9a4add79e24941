package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"product-search/internal/models"
	"product-search/internal/repository"
)

// Analytics calcula las estadísticas de búsquedas y clicks
type Analytics interface {
	TopTerms(ctx context.Context, limit int) ([]models.TermCount, error)
	TopProducts(ctx context.Context, limit int) ([]models.ProductClicks, error)
	Trends(ctx context.Context, days int) ([]models.DailyCount, error)
}

const (
	defaultLimit = 10
	maxLimit     = 50
	defaultDays  = 7
	maxDays      = 90
)

type TrackingHandler struct {
	recorder  SearchRecorder
	analytics Analytics
}

// NewTrackingHandler crea el handler de clicks y estadísticas.
// Sin base de datos ambos argumentos son nil y las rutas responden 503.
func NewTrackingHandler(recorder SearchRecorder, analytics Analytics) *TrackingHandler {
	return &TrackingHandler{
		recorder:  recorder,
		analytics: analytics,
	}
}

// POST /api/busquedas/:id/click
func (h *TrackingHandler) RecordClick(c *gin.Context) {
	const op = "TrackingHandler.RecordClick"

	if h.recorder == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "tracking unavailable"})
		return
	}

	var req models.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindError(err).Error()})
		return
	}

	err := h.recorder.RecordClick(c.Request.Context(), c.Param("id"), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "click recorded"})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid search ID"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "search not found"})
	default:
		slog.Error("failed to record click", "op", op, "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record click"})
	}
}

// GET /api/analytics/terminos
func (h *TrackingHandler) TopTerms(c *gin.Context) {
	if !h.available(c) {
		return
	}
	limit, ok := boundedInt(c, "limit", defaultLimit, maxLimit)
	if !ok {
		return
	}

	terms, err := h.analytics.TopTerms(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "TrackingHandler.TopTerms", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"terminos": terms})
}

// GET /api/analytics/productos
func (h *TrackingHandler) TopProducts(c *gin.Context) {
	if !h.available(c) {
		return
	}
	limit, ok := boundedInt(c, "limit", defaultLimit, maxLimit)
	if !ok {
		return
	}

	products, err := h.analytics.TopProducts(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "TrackingHandler.TopProducts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productos": products})
}

// GET /api/analytics/tendencias
func (h *TrackingHandler) Trends(c *gin.Context) {
	if !h.available(c) {
		return
	}
	days, ok := boundedInt(c, "dias", defaultDays, maxDays)
	if !ok {
		return
	}

	trends, err := h.analytics.Trends(c.Request.Context(), days)
	if err != nil {
		h.fail(c, "TrackingHandler.Trends", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dias": days, "tendencias": trends})
}

func (h *TrackingHandler) available(c *gin.Context) bool {
	if h.analytics == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analytics unavailable"})
		return false
	}
	return true
}

func (h *TrackingHandler) fail(c *gin.Context, op string, err error) {
	slog.Error("analytics query failed", "op", op, "err", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to compute analytics"})
}

// boundedInt lee un entero positivo opcional, como mucho maxN
func boundedInt(c *gin.Context, name string, def, maxN int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxN {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be between 1 and " + strconv.Itoa(maxN)})
		return 0, false
	}
	return n, true
}
