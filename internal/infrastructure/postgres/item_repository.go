package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, code, description, category, subcategory, stock1, stock2,
	stock_in, stock_in_date, stock_out, stock_out_date, purpose, balance,
	balance_after_reconciliation, created_at, updated_at, created_by, last_modified_by`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo ítem. No hay constraint de unicidad sobre code.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Description, item.Category, item.Subcategory,
		item.Stock1, item.Stock2, item.StockIn, item.StockInDate, item.StockOut,
		item.StockOutDate, item.Purpose, item.Balance, item.BalanceAfterReconciliation,
		item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.LastModifiedBy,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene un ítem bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene efecto cuando el repo está atado a una transacción.
func (r *ItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

// GetByCode obtiene la primera coincidencia por código (el código no es único).
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE code = $1 ORDER BY created_at LIMIT 1`, code)
}

func (r *ItemRepo) getOne(query string, arg any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.Code, &i.Description, &i.Category, &i.Subcategory,
		&i.Stock1, &i.Stock2, &i.StockIn, &i.StockInDate, &i.StockOut,
		&i.StockOutDate, &i.Purpose, &i.Balance, &i.BalanceAfterReconciliation,
		&i.CreatedAt, &i.UpdatedAt, &i.CreatedBy, &i.LastModifiedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List lista ítems ordenados por actualización descendente.
// limit <= 0 devuelve el set completo (la búsqueda filtra en memoria).
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY updated_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.Code, &i.Description, &i.Category, &i.Subcategory,
			&i.Stock1, &i.Stock2, &i.StockIn, &i.StockInDate, &i.StockOut,
			&i.StockOutDate, &i.Purpose, &i.Balance, &i.BalanceAfterReconciliation,
			&i.CreatedAt, &i.UpdatedAt, &i.CreatedBy, &i.LastModifiedBy,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables del ítem.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET code = $2, description = $3, category = $4, subcategory = $5,
			stock1 = $6, stock2 = $7, stock_in = $8, stock_in_date = $9,
			stock_out = $10, stock_out_date = $11, purpose = $12, balance = $13,
			balance_after_reconciliation = $14, updated_at = $15, last_modified_by = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Description, item.Category, item.Subcategory,
		item.Stock1, item.Stock2, item.StockIn, item.StockInDate,
		item.StockOut, item.StockOutDate, item.Purpose, item.Balance,
		item.BalanceAfterReconciliation, item.UpdatedAt, item.LastModifiedBy,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID. Las transacciones del ítem no se tocan.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
