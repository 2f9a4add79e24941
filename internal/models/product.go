package models

// Category es una de las categorías canónicas del catálogo
type Category string

const (
	CategoryElectronics Category = "ELECTRÓNICA"
	CategoryClothing    Category = "ROPA"
	CategoryFootwear    Category = "CALZADO"
	CategoryHome        Category = "HOGAR"
	CategoryToys        Category = "JUGUETES"
	CategorySports      Category = "DEPORTES"
	CategoryBooks       Category = "LIBROS"
	CategoryFood        Category = "ALIMENTOS"
	CategoryBeauty      Category = "BELLEZA"
	CategoryOffice      Category = "OFICINA"
	CategoryAutomotive  Category = "AUTOMOTRIZ"
	CategoryPets        Category = "MASCOTAS"
	CategoryGeneral     Category = "GENERAL"
)

// Categories lista las categorías canónicas en orden de presentación
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryFootwear,
		CategoryHome,
		CategoryToys,
		CategorySports,
		CategoryBooks,
		CategoryFood,
		CategoryBeauty,
		CategoryOffice,
		CategoryAutomotive,
		CategoryPets,
		CategoryGeneral,
	}
}

// IsCategory indica si s es exactamente una categoría canónica
func IsCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Condition es el estado canónico de un producto
type Condition string

const (
	ConditionNew         Condition = "NEW"
	ConditionUsed        Condition = "USED"
	ConditionRefurbished Condition = "REFURBISHED"
)

// Product representa un producto ya normalizado
type Product struct {
	ProductID   int       `json:"productId" bson:"productId"`
	StoreID     int       `json:"storeId" bson:"storeId"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Category    Category  `json:"category" bson:"category"`
	Condition   Condition `json:"condition" bson:"condition"`
	Stock       int       `json:"stock" bson:"stock"`
	SKU         string    `json:"sku,omitempty" bson:"sku,omitempty"`
	Description string    `json:"description" bson:"description"`
	Brand       string    `json:"brand" bson:"brand"`
	CreatedAt   string    `json:"createdAt" bson:"createdAt"`
}

// RawProduct es un registro tal como llega de la API externa o de la colección local.
// Category y Condition todavía no están normalizados.
type RawProduct struct {
	ProductID   int       `json:"productId" bson:"productId"`
	StoreID     int       `json:"storeId" bson:"storeId"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Condition   string    `json:"condition" bson:"condition"`
	Stock       int       `json:"stock" bson:"stock"`
	SKU         string    `json:"sku,omitempty" bson:"sku,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Brand       string    `json:"brand,omitempty" bson:"brand,omitempty"`
	CreatedAt   Timestamp `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// RawBatch es lo que entrega una fuente: los registros decodificados y la
// cantidad de registros que no se pudieron decodificar.
type RawBatch struct {
	Products []RawProduct
	Skipped  int
}
