package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
// StockIn y Balance no se envían: se derivan de Stock1, Stock2 y StockOut.
type CreateItemRequest struct {
	Code                       string          `json:"code"`
	Description                string          `json:"description"`
	Category                   string          `json:"category"`
	Subcategory                string          `json:"subcategory"`
	Stock1                     decimal.Decimal `json:"stock1"`
	Stock2                     decimal.Decimal `json:"stock2"`
	StockOut                   decimal.Decimal `json:"stock_out"`
	StockOutDate               *time.Time      `json:"stock_out_date,omitempty"`
	Purpose                    string          `json:"purpose"`
	BalanceAfterReconciliation decimal.Decimal `json:"balance_after_reconciliation"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
//
// StockInDelta y StockOutDelta son lo que el usuario ingresó en el formulario
// de edición: CANTIDADES A SUMAR a los acumulados almacenados, no valores de
// reemplazo. El caso de uso lee el valor vigente, suma el delta y persiste el
// total resultante.
type UpdateItemRequest struct {
	Code                       *string          `json:"code,omitempty"`
	Description                *string          `json:"description,omitempty"`
	Category                   *string          `json:"category,omitempty"`
	Subcategory                *string          `json:"subcategory,omitempty"`
	Stock1                     *decimal.Decimal `json:"stock1,omitempty"`
	Stock2                     *decimal.Decimal `json:"stock2,omitempty"`
	StockInDelta               *decimal.Decimal `json:"stock_in_delta,omitempty"`
	StockOutDelta              *decimal.Decimal `json:"stock_out_delta,omitempty"`
	Purpose                    *string          `json:"purpose,omitempty"`
	BalanceAfterReconciliation *decimal.Decimal `json:"balance_after_reconciliation,omitempty"`
}

// ItemResponse representación HTTP de un ítem.
type ItemResponse struct {
	ID                         string          `json:"id"`
	Code                       string          `json:"code"`
	Description                string          `json:"description"`
	Category                   string          `json:"category"`
	Subcategory                string          `json:"subcategory"`
	Stock1                     decimal.Decimal `json:"stock1"`
	Stock2                     decimal.Decimal `json:"stock2"`
	StockIn                    decimal.Decimal `json:"stock_in"`
	StockInDate                *time.Time      `json:"stock_in_date,omitempty"`
	StockOut                   decimal.Decimal `json:"stock_out"`
	StockOutDate               *time.Time      `json:"stock_out_date,omitempty"`
	Purpose                    string          `json:"purpose"`
	Balance                    decimal.Decimal `json:"balance"`
	BalanceAfterReconciliation decimal.Decimal `json:"balance_after_reconciliation"`
	CreatedAt                  time.Time       `json:"created_at"`
	UpdatedAt                  time.Time       `json:"updated_at"`
	CreatedBy                  string          `json:"created_by"`
	LastModifiedBy             string          `json:"last_modified_by"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// TransactionResponse representación HTTP de una transacción del libro.
type TransactionResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        time.Time       `json:"date"`
	Purpose     string          `json:"purpose"`
	PerformedBy string          `json:"performed_by"`
	Notes       string          `json:"notes,omitempty"`
}

// ImportSummary resultado agregado de una importación CSV.
// El batch continúa fila por fila: una fila mala cuenta como error y no aborta.
type ImportSummary struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Errors   int `json:"errors"`
}
