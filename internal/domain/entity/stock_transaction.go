package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de stock.
const (
	TransactionTypeIn  = "in"  // entrada
	TransactionTypeOut = "out" // salida
)

// StockTransaction es una entrada del libro de movimientos (append-only).
// Nunca se modifica después de creada; se agrega una por cada alta, edición o
// baja de un ítem. Al borrar un ítem sus transacciones previas quedan como
// historial huérfano, a propósito.
type StockTransaction struct {
	ID          string
	ItemID      string
	Type        string // in | out
	Quantity    decimal.Decimal
	Date        time.Time
	Purpose     string
	PerformedBy string
	Notes       string
}
