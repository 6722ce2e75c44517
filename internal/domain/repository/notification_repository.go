package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para el feed de avisos (DIP).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// List devuelve los avisos más recientes primero.
	List(limit int) ([]*entity.Notification, error)
	MarkAllRead() error
	Delete(id string) error
}
