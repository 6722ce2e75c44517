package entity

import "time"

// Category agrupa ítems; posee un conjunto de subcategorías sin orden.
// La unicidad de nombres de subcategoría (case-insensitive) se verifica en el
// caso de uso antes de insertar, no en la capa de almacenamiento.
type Category struct {
	ID            string
	Name          string
	Subcategories []Subcategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Subcategory pertenece a una Category.
type Subcategory struct {
	ID         string
	CategoryID string
	Name       string
}
