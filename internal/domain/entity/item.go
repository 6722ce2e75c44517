package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario.
//
// Code es un identificador visible para el usuario; el sistema NO garantiza su
// unicidad (las búsquedas por código devuelven la primera coincidencia).
// Stock1 y Stock2 son dos contadores de existencias independientes; StockIn y
// StockOut son acumulados de por vida. Balance es el total derivado:
//
//	al crear:   StockIn = Stock1 + Stock2; Balance = StockIn - StockOut
//	al editar:  Balance se ajusta solo por el delta de StockIn/StockOut que aumente
//
// BalanceAfterReconciliation es una cifra de conteo físico ingresada a mano,
// sin relación automática con Balance.
type Item struct {
	ID                         string
	Code                       string
	Description                string
	Category                   string // nombre libre, no es foreign key
	Subcategory                string // nombre libre, no es foreign key
	Stock1                     decimal.Decimal
	Stock2                     decimal.Decimal
	StockIn                    decimal.Decimal
	StockInDate                *time.Time
	StockOut                   decimal.Decimal
	StockOutDate               *time.Time
	Purpose                    string
	Balance                    decimal.Decimal
	BalanceAfterReconciliation decimal.Decimal
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	CreatedBy                  string
	LastModifiedBy             string
}

// FormattedDescription devuelve "Categoría: Subcategoría - Descripción".
func (i *Item) FormattedDescription() string {
	return i.Category + ": " + i.Subcategory + " - " + i.Description
}
