package dto

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest body para PUT /api/categories/:id.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// AddSubcategoryRequest body para POST /api/categories/:id/subcategories.
type AddSubcategoryRequest struct {
	Name string `json:"name"`
}

// SubcategoryResponse representación HTTP de una subcategoría.
type SubcategoryResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// CategoryResponse representación HTTP de una categoría con sus subcategorías.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}
