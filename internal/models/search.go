package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchFilters es la forma persistida de los filtros de una búsqueda
type SearchFilters struct {
	PriceRange string `json:"precio,omitempty" bson:"precio,omitempty"`
	Category   string `json:"categoria,omitempty" bson:"categoria,omitempty"`
	Condition  string `json:"condicion,omitempty" bson:"condicion,omitempty"`
	SortOrder  string `json:"ordenar,omitempty" bson:"ordenar,omitempty"`
}

// SearchRecord es el historial de una búsqueda ejecutada
type SearchRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Term      string             `json:"termino" bson:"termino"`
	Filters   SearchFilters      `json:"filtros" bson:"filtros"`
	Results   []int              `json:"resultados" bson:"resultados"`
	Total     int                `json:"total" bson:"total"`
	CreatedAt time.Time          `json:"fecha" bson:"fecha"`
}

// ClickRecord registra un click sobre un resultado de búsqueda
type ClickRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SearchID  primitive.ObjectID `json:"searchId" bson:"searchId"`
	ProductID int                `json:"productId" bson:"productId"`
	Position  int                `json:"posicion" bson:"posicion"`
	CreatedAt time.Time          `json:"fecha" bson:"fecha"`
}

// ClickRequest es el cuerpo de POST /api/busquedas/:id/click
type ClickRequest struct {
	ProductID int `json:"productId" binding:"required,gt=0"`
	Position  int `json:"posicion" binding:"gte=0"`
}

// TermCount es una fila del ranking de términos
type TermCount struct {
	Term  string `json:"termino" bson:"_id"`
	Count int    `json:"busquedas" bson:"count"`
}

// ProductClicks es una fila del ranking de productos
type ProductClicks struct {
	ProductID int `json:"productId" bson:"_id"`
	Clicks    int `json:"clicks" bson:"clicks"`
}

// DailyCount es el número de búsquedas de un día (YYYY-MM-DD)
type DailyCount struct {
	Day   string `json:"dia" bson:"_id"`
	Count int    `json:"busquedas" bson:"count"`
}

// CategoryCount es una categoría con su número de productos
type CategoryCount struct {
	Category Category `json:"categoria"`
	Count    int      `json:"productos"`
}
