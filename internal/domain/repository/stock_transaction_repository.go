package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// StockTransactionRepository define el puerto de persistencia para el libro de
// movimientos (DIP). Solo altas y lecturas: las transacciones nunca se mutan.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	ListByItem(itemID string) ([]*entity.StockTransaction, error)
	// ListAll devuelve el historial completo, para la agregación semanal.
	ListAll() ([]*entity.StockTransaction, error)
}
