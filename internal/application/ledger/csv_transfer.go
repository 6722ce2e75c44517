package ledger

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
)

// CSVUseCase importa y exporta ítems en el formato CSV plano de la aplicación.
type CSVUseCase struct {
	ledger *UseCase
	codec  ItemCSVCodec
}

// NewCSVUseCase construye el caso de uso de transferencia CSV.
func NewCSVUseCase(ledger *UseCase, codec ItemCSVCodec) *CSVUseCase {
	return &CSVUseCase{ledger: ledger, codec: codec}
}

// Import lee el CSV y da de alta un ítem por fila válida.
//
// Las filas sin code, description o category se saltan y cuentan como error;
// el batch sigue fila por fila en lugar de abortar. Los números ilegibles
// valen cero. Devuelve el resumen {total, importados, errores}.
func (uc *CSVUseCase) Import(ctx context.Context, r io.Reader, actor string) (dto.ImportSummary, error) {
	records, err := uc.codec.Decode(r)
	if err != nil {
		return dto.ImportSummary{}, fmt.Errorf("decodificar CSV: %w", err)
	}

	summary := dto.ImportSummary{Total: len(records)}
	for _, rec := range records {
		if rec.Code == "" || rec.Description == "" || rec.Category == "" {
			summary.Errors++
			continue
		}

		performedBy := rec.CreatedBy
		if performedBy == "" {
			performedBy = actor
		}
		req := dto.CreateItemRequest{
			Code:                       rec.Code,
			Description:                rec.Description,
			Category:                   rec.Category,
			Subcategory:                rec.Subcategory,
			Stock1:                     parseQuantity(rec.Stock1),
			Stock2:                     parseQuantity(rec.Stock2),
			StockOut:                   parseQuantity(rec.StockOut),
			StockOutDate:               parseOutDate(rec.OutDate),
			Purpose:                    rec.Purpose,
			BalanceAfterReconciliation: parseQuantity(rec.BalanceAfterReconciliation),
		}
		if _, err := uc.ledger.CreateItem(ctx, req, performedBy); err != nil {
			summary.Errors++
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

// Export serializa la vista filtrada actual al mismo set de columnas del import.
// La columna "Out Date" solo se llena cuando el ítem tiene salidas (stockOut > 0).
func (uc *CSVUseCase) Export(ctx context.Context, w io.Writer, query, category string) error {
	items, err := uc.ledger.SearchItems(ctx, query, category)
	if err != nil {
		return err
	}
	records := make([]dto.ItemCSVRecord, 0, len(items))
	for _, item := range items {
		outDate := ""
		if item.StockOut.IsPositive() && item.StockOutDate != nil {
			outDate = item.StockOutDate.Format("2006-01-02")
		}
		records = append(records, dto.ItemCSVRecord{
			Code:                       item.Code,
			Description:                item.Description,
			Category:                   item.Category,
			Subcategory:                item.Subcategory,
			Stock1:                     item.Stock1.String(),
			Stock2:                     item.Stock2.String(),
			StockIn:                    item.StockIn.String(),
			StockOut:                   item.StockOut.String(),
			Balance:                    item.Balance.String(),
			OutDate:                    outDate,
			Purpose:                    item.Purpose,
			BalanceAfterReconciliation: item.BalanceAfterReconciliation.String(),
			CreatedBy:                  item.CreatedBy,
			LastModifiedBy:             item.LastModifiedBy,
		})
	}
	return uc.codec.Encode(w, records)
}

// parseQuantity convierte una celda numérica; ilegible o vacía vale cero.
func parseQuantity(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseOutDate acepta los formatos de fecha usuales de la columna "Out Date".
func parseOutDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "1/2/2006", "01/02/2006", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
