package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del libro de movimientos sobre PostgreSQL.
// Append-only: no hay Update ni Delete.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create asienta una transacción en el libro.
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, item_id, type, quantity, date, purpose, performed_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ItemID, tx.Type, tx.Quantity, tx.Date, tx.Purpose, tx.PerformedBy, tx.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByItem devuelve los movimientos de un ítem, del más reciente al más viejo.
func (r *StockTransactionRepo) ListByItem(itemID string) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, item_id, type, quantity, date, purpose, performed_by, notes
		FROM stock_transactions WHERE item_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by item: %w", err)
	}
	return scanTransactions(rows)
}

// ListAll devuelve el historial completo, para la agregación semanal.
func (r *StockTransactionRepo) ListAll() ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, item_id, type, quantity, date, purpose, performed_by, notes
		FROM stock_transactions ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.StockTransaction, error) {
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var tx entity.StockTransaction
		if err := rows.Scan(
			&tx.ID, &tx.ItemID, &tx.Type, &tx.Quantity, &tx.Date,
			&tx.Purpose, &tx.PerformedBy, &tx.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}
