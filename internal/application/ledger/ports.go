package ledger

import (
	"context"
	"io"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del ítem y el
// asiento del libro de movimientos sean una sola operación lógica: o ambos
// quedan persistidos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.StockTransactionRepository,
	) error) error
}

// ItemCache cache explícito de ítems por ID, con punto de invalidación
// definido: toda mutación invalida (o reescribe) la entrada del ítem tocado.
// Una implementación nil-safe puede devolver (nil, nil) siempre.
type ItemCache interface {
	Get(ctx context.Context, id string) (*entity.Item, error)
	Set(ctx context.Context, item *entity.Item) error
	Invalidate(ctx context.Context, id string) error
}

// ItemCSVCodec codifica y decodifica el CSV de ítems (adaptador de infraestructura).
type ItemCSVCodec interface {
	Decode(r io.Reader) ([]dto.ItemCSVRecord, error)
	Encode(w io.Writer, records []dto.ItemCSVRecord) error
}

// Notifier agrega un aviso al feed de la aplicación. Best-effort: un fallo al
// notificar no revierte la mutación que lo originó.
type Notifier interface {
	Notify(ctx context.Context, message string)
}
