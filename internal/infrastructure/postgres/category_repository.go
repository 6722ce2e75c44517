package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
// Las subcategorías viven en su propia tabla y se ensamblan al leer.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría con sus subcategorías; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	subs, err := r.subcategoriesOf(c.ID)
	if err != nil {
		return nil, err
	}
	c.Subcategories = subs
	return &c, nil
}

// List devuelve todas las categorías con sus subcategorías.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		subs, err := r.subcategoriesOf(c.ID)
		if err != nil {
			return nil, err
		}
		c.Subcategories = subs
	}
	return list, nil
}

// Update actualiza el nombre de la categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`,
		category.ID, category.Name, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina la categoría y sus subcategorías.
func (r *CategoryRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM subcategories WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("delete subcategories: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// AddSubcategory persiste una subcategoría. La unicidad case-insensitive la
// verifica el caso de uso antes de llamar; aquí no hay constraint.
func (r *CategoryRepo) AddSubcategory(sub *entity.Subcategory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO subcategories (id, category_id, name) VALUES ($1, $2, $3)`,
		sub.ID, sub.CategoryID, sub.Name,
	)
	if err != nil {
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// DeleteSubcategory elimina una subcategoría por ID.
func (r *CategoryRepo) DeleteSubcategory(id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

func (r *CategoryRepo) subcategoriesOf(categoryID string) ([]entity.Subcategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, category_id, name FROM subcategories WHERE category_id = $1 ORDER BY name`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var subs []entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
