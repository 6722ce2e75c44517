package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías y subcategorías.
//
// La unicidad de subcategorías es por nombre case-insensitive y se verifica
// aquí, antes de insertar; la capa de almacenamiento no la impone. Agregar una
// subcategoría a una categoría inexistente es un no-op silencioso.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría sin subcategorías.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cat := &entity.Category{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// AddSubcategory agrega una subcategoría a la categoría.
//
// Si la categoría no existe, no hace nada (no-op silencioso). Si ya existe una
// subcategoría con el mismo nombre ignorando mayúsculas, tampoco hace nada y
// devuelve la categoría sin cambios.
func (uc *CategoryUseCase) AddSubcategory(categoryID string, in dto.AddSubcategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.repo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	for _, sub := range cat.Subcategories {
		if strings.EqualFold(sub.Name, name) {
			return toCategoryResponse(cat), nil
		}
	}
	sub := &entity.Subcategory{
		ID:         uuid.New().String(),
		CategoryID: cat.ID,
		Name:       name,
	}
	if err := uc.repo.AddSubcategory(sub); err != nil {
		return nil, err
	}
	cat.Subcategories = append(cat.Subcategories, *sub)
	return toCategoryResponse(cat), nil
}

// List devuelve todas las categorías con sus subcategorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// GetByID devuelve una categoría; (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return toCategoryResponse(cat), nil
}

// Update renombra una categoría; (nil, nil) si no existe.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	cat.Name = strings.TrimSpace(in.Name)
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Delete elimina la categoría y sus subcategorías. Los ítems que la referencian
// no se tocan: los nombres de categoría en ítems son texto libre.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	subs := make([]dto.SubcategoryResponse, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, dto.SubcategoryResponse{
			ID:         s.ID,
			CategoryID: s.CategoryID,
			Name:       s.Name,
		})
	}
	return &dto.CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Subcategories: subs,
	}
}
