package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// fakeCategoryRepo repo en memoria para categorías y subcategorías.
type fakeCategoryRepo struct {
	cats map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Subcategories = append([]entity.Subcategory(nil), c.Subcategories...)
	return &cp, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.cats))
	for id := range r.cats {
		c, _ := r.GetByID(id)
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.cats, id)
	return nil
}

func (r *fakeCategoryRepo) AddSubcategory(sub *entity.Subcategory) error {
	c, ok := r.cats[sub.CategoryID]
	if !ok {
		return nil
	}
	c.Subcategories = append(c.Subcategories, *sub)
	return nil
}

func (r *fakeCategoryRepo) DeleteSubcategory(id string) error {
	for _, c := range r.cats {
		for i, s := range c.Subcategories {
			if s.ID == id {
				c.Subcategories = append(c.Subcategories[:i], c.Subcategories[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func newCategoryUC(t *testing.T) (*usecase.CategoryUseCase, string) {
	t.Helper()
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	cat, err := uc.Create(dto.CreateCategoryRequest{Name: "Redes"})
	require.NoError(t, err)
	return uc, cat.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Subcategorías: unicidad case-insensitive y no-op silencioso
// ──────────────────────────────────────────────────────────────────────────────

func TestAddSubcategory_Agrega(t *testing.T) {
	uc, catID := newCategoryUC(t)

	out, err := uc.AddSubcategory(catID, dto.AddSubcategoryRequest{Name: "Cableado"})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, out.Subcategories, 1)
	assert.Equal(t, "Cableado", out.Subcategories[0].Name)
	assert.Equal(t, catID, out.Subcategories[0].CategoryID)
}

func TestAddSubcategory_DuplicadoCaseInsensitiveEsNoOp(t *testing.T) {
	uc, catID := newCategoryUC(t)

	_, err := uc.AddSubcategory(catID, dto.AddSubcategoryRequest{Name: "Cableado"})
	require.NoError(t, err)

	// Mismo nombre con otras mayúsculas: no se agrega y no es un error.
	out, err := uc.AddSubcategory(catID, dto.AddSubcategoryRequest{Name: "CABLEADO"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out.Subcategories, 1, "el duplicado no debe agregarse")
	assert.Equal(t, "Cableado", out.Subcategories[0].Name, "se conserva el nombre original")
}

func TestAddSubcategory_CategoriaInexistenteEsNoOpSilencioso(t *testing.T) {
	uc, _ := newCategoryUC(t)

	out, err := uc.AddSubcategory("no-existe", dto.AddSubcategoryRequest{Name: "Cableado"})
	require.NoError(t, err, "categoría inexistente no debe ser un error")
	assert.Nil(t, out)
}

func TestAddSubcategory_NombreVacio(t *testing.T) {
	uc, catID := newCategoryUC(t)
	_, err := uc.AddSubcategory(catID, dto.AddSubcategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCategory_RecortaEspacios(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	out, err := uc.Create(dto.CreateCategoryRequest{Name: "  Ferretería  "})
	require.NoError(t, err)
	assert.Equal(t, "Ferretería", out.Name)
}

func TestUpdateCategory_NoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	out, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: "Nuevo"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDeleteCategory_NoTocaLosItems(t *testing.T) {
	// El borrado de la categoría es independiente de los ítems: los nombres de
	// categoría en ítems son texto libre y quedan como estaban.
	uc, catID := newCategoryUC(t)
	require.NoError(t, uc.Delete(catID))

	got, err := uc.GetByID(catID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
