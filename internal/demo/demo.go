// Package demo contiene el catálogo fijo que se usa cuando ninguna otra
// fuente de productos está disponible.
package demo

import "product-search/internal/models"

var catalog = [...]models.Product{
	{ProductID: 1, StoreID: 1, Name: "Laptop HP Pavilion 15", Price: 450, Category: models.CategoryElectronics, Condition: models.ConditionNew, Stock: 12, SKU: "DEMO-ELEC-001", Description: "Laptop 15.6 pulgadas, 8GB RAM, 512GB SSD", Brand: "HP", CreatedAt: "2024-01-10T10:00:00Z"},
	{ProductID: 2, StoreID: 1, Name: "Mouse Inalámbrico", Price: 35, Category: models.CategoryElectronics, Condition: models.ConditionNew, Stock: 80, SKU: "DEMO-ELEC-002", Description: "Mouse óptico inalámbrico 2.4GHz", Brand: "Logitech", CreatedAt: "2024-01-11T10:00:00Z"},
	{ProductID: 3, StoreID: 2, Name: "Smartphone Samsung Galaxy A54", Price: 380, Category: models.CategoryElectronics, Condition: models.ConditionUsed, Stock: 3, SKU: "DEMO-ELEC-003", Description: "Equipo usado en buen estado, 128GB", Brand: "Samsung", CreatedAt: "2024-01-12T10:00:00Z"},
	{ProductID: 4, StoreID: 2, Name: "Audífonos Bluetooth", Price: 60, Category: models.CategoryElectronics, Condition: models.ConditionRefurbished, Stock: 20, SKU: "DEMO-ELEC-004", Description: "Audífonos reacondicionados con garantía", Brand: "Sony", CreatedAt: "2024-01-13T10:00:00Z"},
	{ProductID: 5, StoreID: 3, Name: "Chaqueta de Cuero", Price: 180, Category: models.CategoryClothing, Condition: models.ConditionNew, Stock: 15, SKU: "DEMO-ROPA-001", Description: "Chaqueta de cuero sintético", Brand: "Zara", CreatedAt: "2024-01-14T10:00:00Z"},
	{ProductID: 6, StoreID: 3, Name: "Zapatillas Running", Price: 95, Category: models.CategoryFootwear, Condition: models.ConditionNew, Stock: 40, SKU: "DEMO-CALZ-001", Description: "Zapatillas livianas para correr", Brand: "Nike", CreatedAt: "2024-01-15T10:00:00Z"},
	{ProductID: 7, StoreID: 4, Name: "Sofá 3 Cuerpos", Price: 620, Category: models.CategoryHome, Condition: models.ConditionNew, Stock: 4, SKU: "DEMO-HOG-001", Description: "Sofá tapizado gris", Brand: "Rosen", CreatedAt: "2024-01-16T10:00:00Z"},
	{ProductID: 8, StoreID: 4, Name: "Set de Ollas Antiadherentes", Price: 85, Category: models.CategoryHome, Condition: models.ConditionNew, Stock: 25, SKU: "DEMO-HOG-002", Description: "Set de 5 piezas", Brand: "Tramontina", CreatedAt: "2024-01-17T10:00:00Z"},
	{ProductID: 9, StoreID: 5, Name: "Lego Classic 500 piezas", Price: 45, Category: models.CategoryToys, Condition: models.ConditionNew, Stock: 30, SKU: "DEMO-JUG-001", Description: "Caja de bloques clásicos", Brand: "Lego", CreatedAt: "2024-01-18T10:00:00Z"},
	{ProductID: 10, StoreID: 5, Name: "Bicicleta Montaña Aro 29", Price: 520, Category: models.CategorySports, Condition: models.ConditionUsed, Stock: 1, SKU: "DEMO-DEP-001", Description: "Bicicleta con frenos de disco", Brand: "Trek", CreatedAt: "2024-01-19T10:00:00Z"},
	{ProductID: 11, StoreID: 6, Name: "Cien Años de Soledad", Price: 18, Category: models.CategoryBooks, Condition: models.ConditionNew, Stock: 50, SKU: "DEMO-LIB-001", Description: "Novela de Gabriel García Márquez", Brand: "Sudamericana", CreatedAt: "2024-01-20T10:00:00Z"},
	{ProductID: 12, StoreID: 6, Name: "Café de Grano 1kg", Price: 22, Category: models.CategoryFood, Condition: models.ConditionNew, Stock: 60, SKU: "DEMO-ALI-001", Description: "Café tostado de altura", Brand: "Juan Valdez", CreatedAt: "2024-01-21T10:00:00Z"},
	{ProductID: 13, StoreID: 7, Name: "Silla de Escritorio Ergonómica", Price: 210, Category: models.CategoryOffice, Condition: models.ConditionRefurbished, Stock: 6, SKU: "DEMO-OFI-001", Description: "Silla con soporte lumbar", Brand: "Herman Miller", CreatedAt: "2024-01-22T10:00:00Z"},
	{ProductID: 14, StoreID: 7, Name: "Kit de Limpieza para Auto", Price: 40, Category: models.CategoryAutomotive, Condition: models.ConditionNew, Stock: 18, SKU: "DEMO-AUT-001", Description: "Shampoo, cera y microfibras", Brand: "Meguiar's", CreatedAt: "2024-01-23T10:00:00Z"},
	{ProductID: 15, StoreID: 8, Name: "Cama para Perro Mediana", Price: 55, Category: models.CategoryPets, Condition: models.ConditionNew, Stock: 22, SKU: "DEMO-MAS-001", Description: "Cama acolchada lavable", Brand: "PetLife", CreatedAt: "2024-01-24T10:00:00Z"},
}

// Products devuelve una copia del catálogo de demostración.
// El orden y el contenido son siempre los mismos.
func Products() []models.Product {
	out := make([]models.Product, len(catalog))
	copy(out, catalog[:])
	return out
}
