package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"product-search/internal/models"
)

var (
	ErrNotFound  = errors.New("search not found")
	ErrInvalidID = errors.New("invalid search ID")
)

// SearchRepository guarda el historial de búsquedas y clicks y calcula
// las estadísticas sobre ellos.
type SearchRepository struct {
	searches *mongo.Collection
	clicks   *mongo.Collection
	now      func() time.Time
}

func NewSearchRepository(searches, clicks *mongo.Collection) *SearchRepository {
	return &SearchRepository{
		searches: searches,
		clicks:   clicks,
		now:      time.Now,
	}
}

// Record guarda una búsqueda ejecutada y devuelve su ID
func (r *SearchRepository) Record(ctx context.Context, rec models.SearchRecord) (string, error) {
	const op = "SearchRepository.Record"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rec.ID = primitive.NewObjectID()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now().UTC()
	}
	if rec.Results == nil {
		rec.Results = []int{}
	}

	if _, err := r.searches.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return rec.ID.Hex(), nil
}

// RecordClick guarda un click asociado a una búsqueda existente
func (r *SearchRepository) RecordClick(ctx context.Context, searchID string, req models.ClickRequest) error {
	const op = "SearchRepository.RecordClick"

	objID, err := primitive.ObjectIDFromHex(searchID)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.searches.CountDocuments(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	click := models.ClickRecord{
		ID:        primitive.NewObjectID(),
		SearchID:  objID,
		ProductID: req.ProductID,
		Position:  req.Position,
		CreatedAt: r.now().UTC(),
	}
	if _, err := r.clicks.InsertOne(ctx, click); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// TopTerms devuelve los términos más buscados, ignorando búsquedas vacías
func (r *SearchRepository) TopTerms(ctx context.Context, limit int) ([]models.TermCount, error) {
	const op = "SearchRepository.TopTerms"

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"termino": bson.M{"$ne": ""}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$toLower": "$termino"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	out := make([]models.TermCount, 0)
	if err := aggregate(ctx, r.searches, pipeline, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// TopProducts devuelve los productos con más clicks
func (r *SearchRepository) TopProducts(ctx context.Context, limit int) ([]models.ProductClicks, error) {
	const op = "SearchRepository.TopProducts"

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":    "$productId",
			"clicks": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "clicks", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	out := make([]models.ProductClicks, 0)
	if err := aggregate(ctx, r.clicks, pipeline, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Trends cuenta búsquedas por día durante los últimos days días
func (r *SearchRepository) Trends(ctx context.Context, days int) ([]models.DailyCount, error) {
	const op = "SearchRepository.Trends"

	since := r.now().UTC().AddDate(0, 0, -days)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"fecha": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$fecha"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	out := make([]models.DailyCount, 0)
	if err := aggregate(ctx, r.searches, pipeline, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func aggregate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}
