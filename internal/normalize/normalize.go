// Package normalize traduce las etiquetas heterogéneas del catálogo externo
// a las categorías y condiciones canónicas.
//
// Las búsquedas en las tablas son exactas: distinguen mayúsculas y acentos.
// Una etiqueta desconocida nunca es un error.
package normalize

import (
	"strings"

	"product-search/internal/models"
)

const (
	DefaultDescription = "Sin descripción"
	DefaultBrand       = "Genérico"
)

var categoryMap = map[string]models.Category{
	// valores canónicos
	"ELECTRÓNICA": models.CategoryElectronics,
	"ROPA":        models.CategoryClothing,
	"CALZADO":     models.CategoryFootwear,
	"HOGAR":       models.CategoryHome,
	"JUGUETES":    models.CategoryToys,
	"DEPORTES":    models.CategorySports,
	"LIBROS":      models.CategoryBooks,
	"ALIMENTOS":   models.CategoryFood,
	"BELLEZA":     models.CategoryBeauty,
	"OFICINA":     models.CategoryOffice,
	"AUTOMOTRIZ":  models.CategoryAutomotive,
	"MASCOTAS":    models.CategoryPets,
	"GENERAL":     models.CategoryGeneral,

	"Electrónica": models.CategoryElectronics,
	"electrónica": models.CategoryElectronics,
	"ELECTRONICA": models.CategoryElectronics,
	"Electronica": models.CategoryElectronics,
	"electronica": models.CategoryElectronics,
	"Electronics": models.CategoryElectronics,
	"electronics": models.CategoryElectronics,
	"Tecnología":  models.CategoryElectronics,
	"Tecnologia":  models.CategoryElectronics,
	"Computación": models.CategoryElectronics,

	"Ropa":     models.CategoryClothing,
	"ropa":     models.CategoryClothing,
	"Moda":     models.CategoryClothing,
	"Clothing": models.CategoryClothing,
	"clothing": models.CategoryClothing,

	"Calzado":  models.CategoryFootwear,
	"calzado":  models.CategoryFootwear,
	"Zapatos":  models.CategoryFootwear,
	"Shoes":    models.CategoryFootwear,
	"Footwear": models.CategoryFootwear,

	"Hogar":     models.CategoryHome,
	"hogar":     models.CategoryHome,
	"Muebles":   models.CategoryHome,
	"muebles":   models.CategoryHome,
	"Home":      models.CategoryHome,
	"home":      models.CategoryHome,
	"Furniture": models.CategoryHome,
	"furniture": models.CategoryHome,
	"Cocina":    models.CategoryHome,

	"Juguetes": models.CategoryToys,
	"juguetes": models.CategoryToys,
	"Toys":     models.CategoryToys,
	"toys":     models.CategoryToys,

	"Deportes": models.CategorySports,
	"deportes": models.CategorySports,
	"Sports":   models.CategorySports,
	"sports":   models.CategorySports,

	"Libros": models.CategoryBooks,
	"libros": models.CategoryBooks,
	"Books":  models.CategoryBooks,
	"books":  models.CategoryBooks,

	"Alimentos": models.CategoryFood,
	"alimentos": models.CategoryFood,
	"Comida":    models.CategoryFood,
	"Food":      models.CategoryFood,
	"food":      models.CategoryFood,

	"Belleza": models.CategoryBeauty,
	"belleza": models.CategoryBeauty,
	"Beauty":  models.CategoryBeauty,
	"beauty":  models.CategoryBeauty,

	"Oficina":   models.CategoryOffice,
	"oficina":   models.CategoryOffice,
	"Papelería": models.CategoryOffice,
	"Office":    models.CategoryOffice,
	"office":    models.CategoryOffice,

	"Automotriz": models.CategoryAutomotive,
	"automotriz": models.CategoryAutomotive,
	"Autos":      models.CategoryAutomotive,
	"Automotive": models.CategoryAutomotive,

	"Mascotas": models.CategoryPets,
	"mascotas": models.CategoryPets,
	"Pets":     models.CategoryPets,
	"pets":     models.CategoryPets,

	"General": models.CategoryGeneral,
	"general": models.CategoryGeneral,
	"Otros":   models.CategoryGeneral,
}

var conditionMap = map[string]models.Condition{
	"NEW":         models.ConditionNew,
	"USED":        models.ConditionUsed,
	"REFURBISHED": models.ConditionRefurbished,

	"new":             models.ConditionNew,
	"New":             models.ConditionNew,
	"NUEVO":           models.ConditionNew,
	"Nuevo":           models.ConditionNew,
	"nuevo":           models.ConditionNew,
	"used":            models.ConditionUsed,
	"Used":            models.ConditionUsed,
	"USADO":           models.ConditionUsed,
	"Usado":           models.ConditionUsed,
	"usado":           models.ConditionUsed,
	"Seminuevo":       models.ConditionUsed,
	"refurbished":     models.ConditionRefurbished,
	"Refurbished":     models.ConditionRefurbished,
	"REACONDICIONADO": models.ConditionRefurbished,
	"Reacondicionado": models.ConditionRefurbished,
	"reacondicionado": models.ConditionRefurbished,
}

// conditionLabels son las etiquetas aceptadas en el parámetro condicion
var conditionLabels = map[string]models.Condition{
	"NUEVO":           models.ConditionNew,
	"USADO":           models.ConditionUsed,
	"REACONDICIONADO": models.ConditionRefurbished,
	"NEW":             models.ConditionNew,
	"USED":            models.ConditionUsed,
	"REFURBISHED":     models.ConditionRefurbished,
}

// Category devuelve la categoría canónica de raw, o GENERAL si no está mapeada
func Category(raw string) models.Category {
	if c, ok := categoryMap[raw]; ok {
		return c
	}
	return models.CategoryGeneral
}

// Condition devuelve la condición canónica de raw, o NEW si no está mapeada
func Condition(raw string) models.Condition {
	if c, ok := conditionMap[raw]; ok {
		return c
	}
	return models.ConditionNew
}

// ConditionLabel interpreta el valor del parámetro condicion de la API HTTP.
// A diferencia de Condition no aplica ningún valor por defecto.
func ConditionLabel(label string) (models.Condition, bool) {
	c, ok := conditionLabels[label]
	return c, ok
}

// Product normaliza un registro crudo. Devuelve false si faltan campos
// obligatorios (productId o nombre).
func Product(raw models.RawProduct) (models.Product, bool) {
	name := strings.TrimSpace(raw.Name)
	if raw.ProductID <= 0 || name == "" {
		return models.Product{}, false
	}

	p := models.Product{
		ProductID:   raw.ProductID,
		StoreID:     raw.StoreID,
		Name:        name,
		Price:       raw.Price,
		Category:    Category(raw.Category),
		Condition:   Condition(raw.Condition),
		Stock:       raw.Stock,
		SKU:         strings.TrimSpace(raw.SKU),
		Description: strings.TrimSpace(raw.Description),
		Brand:       strings.TrimSpace(raw.Brand),
		CreatedAt:   string(raw.CreatedAt),
	}
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	if p.Brand == "" {
		p.Brand = DefaultBrand
	}
	return p, true
}

// Products normaliza una lista y devuelve cuántos registros se descartaron
func Products(raws []models.RawProduct) ([]models.Product, int) {
	out := make([]models.Product, 0, len(raws))
	dropped := 0
	for _, r := range raws {
		p, ok := Product(r)
		if !ok {
			dropped++
			continue
		}
		out = append(out, p)
	}
	return out, dropped
}
