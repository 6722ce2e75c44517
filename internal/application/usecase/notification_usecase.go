package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

const notificationFeedLimit = 100

// NotificationUseCase feed de avisos de la aplicación.
// Implementa ledger.Notifier: las mutaciones del inventario agregan avisos aquí.
type NotificationUseCase struct {
	repo repository.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, log zerolog.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, log: log}
}

// Notify agrega un aviso al feed. Best-effort: si la escritura falla solo se
// loguea; la operación que originó el aviso ya quedó confirmada.
func (uc *NotificationUseCase) Notify(ctx context.Context, message string) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Timestamp: time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		uc.log.Warn().Err(err).Str("message", message).Msg("no se pudo guardar el aviso")
	}
}

// List devuelve los avisos más recientes primero.
func (uc *NotificationUseCase) List() ([]dto.NotificationResponse, error) {
	notifications, err := uc.repo.List(notificationFeedLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Timestamp: n.Timestamp,
			Read:      n.Read,
		})
	}
	return out, nil
}

// MarkAllRead marca todo el feed como leído.
func (uc *NotificationUseCase) MarkAllRead() error {
	return uc.repo.MarkAllRead()
}

// Delete elimina un aviso.
func (uc *NotificationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
