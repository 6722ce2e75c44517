package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del feed de avisos sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create agrega un aviso al feed.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO notifications (id, message, timestamp, read) VALUES ($1, $2, $3, $4)`,
		n.ID, n.Message, n.Timestamp, n.Read,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// List devuelve los avisos más recientes primero.
func (r *NotificationRepo) List(limit int) ([]*entity.Notification, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, message, timestamp, read FROM notifications ORDER BY timestamp DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Timestamp, &n.Read); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkAllRead marca todo el feed como leído.
func (r *NotificationRepo) MarkAllRead() error {
	_, err := r.q.Exec(context.Background(), `UPDATE notifications SET read = true WHERE read = false`)
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}

// Delete elimina un aviso por ID.
func (r *NotificationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
