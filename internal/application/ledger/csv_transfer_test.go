package ledger_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	appledger "github.com/tu-usuario/stock-ledger/internal/application/ledger"
)

// fakeCodec devuelve filas prearmadas en Decode y captura las de Encode.
type fakeCodec struct {
	records []dto.ItemCSVRecord
	encoded []dto.ItemCSVRecord
}

func (c *fakeCodec) Decode(_ io.Reader) ([]dto.ItemCSVRecord, error) {
	return c.records, nil
}

func (c *fakeCodec) Encode(_ io.Writer, records []dto.ItemCSVRecord) error {
	c.encoded = records
	return nil
}

func newCSVUseCase(records []dto.ItemCSVRecord) (*appledger.CSVUseCase, *fakeCodec, *fakeItemRepo, *fakeTxRepo) {
	itemRepo := newFakeItemRepo()
	txRepo := &fakeTxRepo{}
	runner := &fakeTxRunner{itemRepo: itemRepo, txRepo: txRepo}
	uc := appledger.NewUseCase(runner, itemRepo, txRepo, nil, nil)
	codec := &fakeCodec{records: records}
	return appledger.NewCSVUseCase(uc, codec), codec, itemRepo, txRepo
}

func validRecord(code string) dto.ItemCSVRecord {
	return dto.ItemCSVRecord{
		Code:        code,
		Description: "Cable UTP cat6",
		Category:    "Redes",
		Stock1:      "10",
		Stock2:      "5",
		StockOut:    "2",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Import
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_FilasInvalidasCuentanComoErrorYElBatchSigue(t *testing.T) {
	records := []dto.ItemCSVRecord{
		validRecord("NET-001"),
		{Code: "", Description: "sin código", Category: "Redes"},
		validRecord("NET-002"),
		{Code: "NET-003", Description: "", Category: "Redes"},
		{Code: "NET-004", Description: "sin categoría", Category: ""},
	}
	uc, _, itemRepo, _ := newCSVUseCase(records)

	summary, err := uc.Import(context.Background(), bytes.NewReader(nil), "importer@example.com")
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 3, summary.Errors)

	items, _ := itemRepo.List(0, 0)
	assert.Len(t, items, 2)
}

func TestImport_RecalculaStockInYBalance(t *testing.T) {
	// La columna stockIn del archivo miente a propósito: el alta recalcula.
	rec := validRecord("NET-001")
	rec.StockIn = "999"
	rec.Balance = "999"
	uc, _, itemRepo, txRepo := newCSVUseCase([]dto.ItemCSVRecord{rec})

	_, err := uc.Import(context.Background(), bytes.NewReader(nil), "importer")
	require.NoError(t, err)

	items, _ := itemRepo.List(0, 0)
	require.Len(t, items, 1)
	assert.True(t, items[0].StockIn.Equal(dec("15")), "stockIn recalculado de stock1+stock2, got %s", items[0].StockIn)
	assert.True(t, items[0].Balance.Equal(dec("13")))

	// Cada fila importada asienta su entrada inicial.
	txs, _ := txRepo.ListByItem(items[0].ID)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Quantity.Equal(dec("15")))
}

func TestImport_NumerosIlegiblesValenCero(t *testing.T) {
	rec := validRecord("NET-001")
	rec.Stock1 = "diez"
	rec.Stock2 = ""
	rec.StockOut = "n/a"
	uc, _, itemRepo, _ := newCSVUseCase([]dto.ItemCSVRecord{rec})

	summary, err := uc.Import(context.Background(), bytes.NewReader(nil), "importer")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	items, _ := itemRepo.List(0, 0)
	require.Len(t, items, 1)
	assert.True(t, items[0].StockIn.IsZero())
	assert.True(t, items[0].Balance.IsZero())
}

func TestImport_CreatedByDelArchivoPrevalece(t *testing.T) {
	withAuthor := validRecord("NET-001")
	withAuthor.CreatedBy = "original@example.com"
	anonymous := validRecord("NET-002")
	uc, _, itemRepo, _ := newCSVUseCase([]dto.ItemCSVRecord{withAuthor, anonymous})

	_, err := uc.Import(context.Background(), bytes.NewReader(nil), "importer@example.com")
	require.NoError(t, err)

	items, _ := itemRepo.List(0, 0)
	byCode := map[string]string{}
	for _, it := range items {
		byCode[it.Code] = it.CreatedBy
	}
	assert.Equal(t, "original@example.com", byCode["NET-001"])
	assert.Equal(t, "importer@example.com", byCode["NET-002"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_OutDateSoloConSalidas(t *testing.T) {
	uc, codec, _, _ := newCSVUseCase(nil)

	// Alta vía import para poblar el repo: una fila con salida y fecha, otra sin.
	withOut := validRecord("NET-001")
	withOut.OutDate = "2025-06-03"
	noOut := validRecord("NET-002")
	noOut.StockOut = "0"
	codec.records = []dto.ItemCSVRecord{withOut, noOut}
	_, err := uc.Import(context.Background(), bytes.NewReader(nil), "importer")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, uc.Export(context.Background(), &buf, "", ""))

	require.Len(t, codec.encoded, 2)
	byCode := map[string]dto.ItemCSVRecord{}
	for _, rec := range codec.encoded {
		byCode[rec.Code] = rec
	}
	assert.Equal(t, "2025-06-03", byCode["NET-001"].OutDate, "con stockOut > 0 la fecha de salida se exporta")
	assert.Equal(t, "", byCode["NET-002"].OutDate, "sin salidas la columna Out Date queda vacía")
	assert.Equal(t, "15", byCode["NET-001"].StockIn)
	assert.Equal(t, "13", byCode["NET-001"].Balance)
}

func TestExport_RespetaElFiltro(t *testing.T) {
	uc, codec, _, _ := newCSVUseCase([]dto.ItemCSVRecord{
		validRecord("NET-001"),
		{Code: "FER-001", Description: "Tornillo", Category: "Ferretería", Stock1: "1"},
	})
	_, err := uc.Import(context.Background(), bytes.NewReader(nil), "importer")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, uc.Export(context.Background(), &buf, "", "Redes"))

	require.Len(t, codec.encoded, 1)
	assert.Equal(t, "NET-001", codec.encoded[0].Code)
}
