package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	domledger "github.com/tu-usuario/stock-ledger/internal/domain/ledger"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// UseCase es el conciliador del libro de stock: mantiene la consistencia de
// Balance cuando se altera un ítem y asienta una transacción de auditoría por
// cada mutación (alta, edición y baja).
//
// Cada mutación corre dentro de una transacción de BD vía TxRunner, con la fila
// del ítem bloqueada (SELECT FOR UPDATE) en ediciones y bajas: el ítem y su
// asiento se persisten juntos o no se persiste ninguno, y dos ediciones
// concurrentes del mismo ítem se serializan en lugar de pisarse el ajuste.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	txRepo   repository.StockTransactionRepository
	cache    ItemCache // opcional; nil desactiva el cache
	notifier Notifier  // opcional; nil desactiva el feed de avisos
}

// NewUseCase construye el conciliador. cache y notifier pueden ser nil.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	txRepo repository.StockTransactionRepository,
	cache ItemCache,
	notifier Notifier,
) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		txRepo:   txRepo,
		cache:    cache,
		notifier: notifier,
	}
}

// CreateItem da de alta un ítem y asienta la transacción de entrada inicial.
//
// Reglas de alta: StockIn = Stock1 + Stock2; Balance = StockIn - StockOut.
// El asiento es de tipo "in" con cantidad igual al StockIn calculado.
func (uc *UseCase) CreateItem(ctx context.Context, in dto.CreateItemRequest, actor string) (*dto.ItemResponse, error) {
	if in.Code == "" || in.Description == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock1.IsNegative() || in.Stock2.IsNegative() || in.StockOut.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	stockIn := domledger.InitialStockIn(in.Stock1, in.Stock2)
	item := &entity.Item{
		ID:                         uuid.New().String(),
		Code:                       in.Code,
		Description:                in.Description,
		Category:                   in.Category,
		Subcategory:                in.Subcategory,
		Stock1:                     in.Stock1,
		Stock2:                     in.Stock2,
		StockIn:                    stockIn,
		StockInDate:                &now,
		StockOut:                   in.StockOut,
		StockOutDate:               in.StockOutDate,
		Purpose:                    in.Purpose,
		Balance:                    domledger.InitialBalance(stockIn, in.StockOut),
		BalanceAfterReconciliation: in.BalanceAfterReconciliation,
		CreatedAt:                  now,
		UpdatedAt:                  now,
		CreatedBy:                  actor,
		LastModifiedBy:             actor,
	}

	tx := &entity.StockTransaction{
		ID:          uuid.New().String(),
		ItemID:      item.ID,
		Type:        entity.TransactionTypeIn,
		Quantity:    stockIn,
		Date:        now,
		Purpose:     in.Purpose,
		PerformedBy: actor,
		Notes:       "Item added",
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return txRepo.Create(tx)
	})
	if err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, item)
	uc.notify(ctx, fmt.Sprintf("Ítem %s agregado por %s", item.Code, actor))
	return toItemResponse(item), nil
}

// UpdateItem aplica una edición al ítem y asienta la transacción correspondiente.
//
// StockInDelta/StockOutDelta se suman a los acumulados vigentes; el valor
// resultante (absoluto) es el que se compara contra el almacenado. Solo los
// aumentos ajustan Balance; el asiento registra el valor absoluto enviado, no
// el delta, y es de tipo "out" si la salida enviada es mayor que cero.
func (uc *UseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateItemRequest, actor string) (*dto.ItemResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if (in.StockInDelta != nil && in.StockInDelta.IsNegative()) ||
		(in.StockOutDelta != nil && in.StockOutDelta.IsNegative()) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.Item

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		item, err := itemRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		priorIn, priorOut := item.StockIn, item.StockOut
		submittedIn, submittedOut := priorIn, priorOut
		if in.StockInDelta != nil {
			submittedIn = priorIn.Add(*in.StockInDelta)
		}
		if in.StockOutDelta != nil {
			submittedOut = priorOut.Add(*in.StockOutDelta)
		}

		item.Balance = domledger.AdjustedBalance(item.Balance, priorIn, priorOut, submittedIn, submittedOut)
		item.StockIn = submittedIn
		item.StockOut = submittedOut
		if in.StockInDelta != nil && in.StockInDelta.IsPositive() {
			item.StockInDate = &now
		}
		if in.StockOutDelta != nil && in.StockOutDelta.IsPositive() {
			item.StockOutDate = &now
		}

		applyItemFields(item, in)
		item.UpdatedAt = now
		item.LastModifiedBy = actor

		if err := itemRepo.Update(item); err != nil {
			return err
		}

		// Tipo "out" si la salida enviada queda > 0; cantidad: el absoluto
		// enviado, prefiriendo la entrada si ambos vinieron en la edición.
		txType := entity.TransactionTypeIn
		if in.StockOutDelta != nil && submittedOut.IsPositive() {
			txType = entity.TransactionTypeOut
		}
		quantity := decimal.Zero
		switch {
		case in.StockInDelta != nil && !submittedIn.IsZero():
			quantity = submittedIn
		case in.StockOutDelta != nil && !submittedOut.IsZero():
			quantity = submittedOut
		}

		updated = item
		return txRepo.Create(&entity.StockTransaction{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Type:        txType,
			Quantity:    quantity,
			Date:        now,
			Purpose:     item.Purpose,
			PerformedBy: actor,
			Notes:       "Item updated",
		})
	})
	if err != nil {
		return nil, err
	}

	uc.cacheInvalidate(ctx, id)
	uc.notify(ctx, fmt.Sprintf("Ítem %s actualizado por %s", updated.Code, actor))
	return toItemResponse(updated), nil
}

// DeleteItem elimina el ítem y asienta una salida de cantidad cero para
// continuidad de auditoría. Las transacciones previas del ítem NO se borran:
// quedan como historial huérfano.
func (uc *UseCase) DeleteItem(ctx context.Context, id, actor string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	var code string

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		item, err := itemRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		code = item.Code

		if err := itemRepo.Delete(id); err != nil {
			return err
		}
		return txRepo.Create(&entity.StockTransaction{
			ID:          uuid.New().String(),
			ItemID:      id,
			Type:        entity.TransactionTypeOut,
			Quantity:    decimal.Zero,
			Date:        now,
			PerformedBy: actor,
			Notes:       "Item deleted",
		})
	})
	if err != nil {
		return err
	}

	uc.cacheInvalidate(ctx, id)
	uc.notify(ctx, fmt.Sprintf("Ítem %s eliminado por %s", code, actor))
	return nil
}

// GetItem devuelve un ítem por ID, pasando primero por el cache.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*dto.ItemResponse, error) {
	if uc.cache != nil {
		if item, err := uc.cache.Get(ctx, id); err == nil && item != nil {
			return toItemResponse(item), nil
		}
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	uc.cacheSet(ctx, item)
	return toItemResponse(item), nil
}

// GetItemByCode devuelve la primera coincidencia por código (el código no es único).
func (uc *UseCase) GetItemByCode(ctx context.Context, code string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// SearchItems filtra en memoria sobre el set completo: substring
// case-insensitive contra código, descripción, categoría y subcategoría, más
// filtro exacto por categoría. query y category vacíos devuelven todo.
func (uc *UseCase) SearchItems(ctx context.Context, query, category string) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.List(0, 0)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if q != "" && !matchesQuery(item, q) {
			continue
		}
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// ListItems devuelve una página de ítems (orden: actualización descendente).
func (uc *UseCase) ListItems(ctx context.Context, limit, offset int) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// ListTransactions devuelve el historial de movimientos de un ítem.
func (uc *UseCase) ListTransactions(ctx context.Context, itemID string) ([]dto.TransactionResponse, error) {
	txs, err := uc.txRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}

func matchesQuery(item *entity.Item, q string) bool {
	return strings.Contains(strings.ToLower(item.Code), q) ||
		strings.Contains(strings.ToLower(item.Description), q) ||
		strings.Contains(strings.ToLower(item.Category), q) ||
		strings.Contains(strings.ToLower(item.Subcategory), q)
}

// applyItemFields copia los campos simples no-nil de la edición sobre el ítem.
func applyItemFields(item *entity.Item, in dto.UpdateItemRequest) {
	if in.Code != nil {
		item.Code = *in.Code
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Subcategory != nil {
		item.Subcategory = *in.Subcategory
	}
	if in.Stock1 != nil {
		item.Stock1 = *in.Stock1
	}
	if in.Stock2 != nil {
		item.Stock2 = *in.Stock2
	}
	if in.Purpose != nil {
		item.Purpose = *in.Purpose
	}
	if in.BalanceAfterReconciliation != nil {
		item.BalanceAfterReconciliation = *in.BalanceAfterReconciliation
	}
}

func (uc *UseCase) cacheSet(ctx context.Context, item *entity.Item) {
	if uc.cache != nil {
		_ = uc.cache.Set(ctx, item)
	}
}

func (uc *UseCase) cacheInvalidate(ctx context.Context, id string) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, id)
	}
}

func (uc *UseCase) notify(ctx context.Context, message string) {
	if uc.notifier != nil {
		uc.notifier.Notify(ctx, message)
	}
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:                         i.ID,
		Code:                       i.Code,
		Description:                i.Description,
		Category:                   i.Category,
		Subcategory:                i.Subcategory,
		Stock1:                     i.Stock1,
		Stock2:                     i.Stock2,
		StockIn:                    i.StockIn,
		StockInDate:                i.StockInDate,
		StockOut:                   i.StockOut,
		StockOutDate:               i.StockOutDate,
		Purpose:                    i.Purpose,
		Balance:                    i.Balance,
		BalanceAfterReconciliation: i.BalanceAfterReconciliation,
		CreatedAt:                  i.CreatedAt,
		UpdatedAt:                  i.UpdatedAt,
		CreatedBy:                  i.CreatedBy,
		LastModifiedBy:             i.LastModifiedBy,
	}
}

func toTransactionResponse(tx *entity.StockTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		ItemID:      tx.ItemID,
		Type:        tx.Type,
		Quantity:    tx.Quantity,
		Date:        tx.Date,
		Purpose:     tx.Purpose,
		PerformedBy: tx.PerformedBy,
		Notes:       tx.Notes,
	}
}
