package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get devuelven (nil, nil) cuando la categoría no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	AddSubcategory(sub *entity.Subcategory) error
	DeleteSubcategory(id string) error
}
