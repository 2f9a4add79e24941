package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"product-search/internal/models"
)

const findAllLimit = 1000

// ProductRepository lee la colección local de productos. Nunca escribe en ella.
type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
	}
}

// FindAll lista los productos persistidos en orden de inserción.
// Los documentos que no se pueden decodificar se saltan y se cuentan en Skipped.
func (r *ProductRepository) FindAll(ctx context.Context) (models.RawBatch, error) {
	const op = "ProductRepository.FindAll"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(findAllLimit)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return models.RawBatch{}, fmt.Errorf("%s: %w", op, err)
	}
	defer cursor.Close(ctx)

	batch := models.RawBatch{Products: make([]models.RawProduct, 0)}
	for cursor.Next(ctx) {
		var p models.RawProduct
		if err := cursor.Decode(&p); err != nil {
			batch.Skipped++
			continue
		}
		batch.Products = append(batch.Products, p)
	}
	if err := cursor.Err(); err != nil {
		return models.RawBatch{}, fmt.Errorf("%s: %w", op, err)
	}
	return batch, nil
}
