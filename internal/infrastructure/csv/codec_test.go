package csv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	infracsv "github.com/tu-usuario/stock-ledger/internal/infrastructure/csv"
)

const sampleCSV = `code,description,category,subcategory,stock1,stock2,stockIn,stockOut,balance,Out Date,purpose,balanceAfterReconciliation,createdBy,lastModifiedBy
NET-001,Cable UTP cat6,Redes,Cableado,10,5,15,2,13,2025-06-03,Tendido planta baja,13,ana@example.com,ana@example.com
FER-001,Tornillo M6,Ferretería,,100,0,100,0,100,,,100,,
`

func TestDecode_LeeLasCabecerasDeLaAplicacion(t *testing.T) {
	codec := infracsv.NewCodec()

	records, err := codec.Decode(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "NET-001", first.Code)
	assert.Equal(t, "Cable UTP cat6", first.Description)
	assert.Equal(t, "Redes", first.Category)
	assert.Equal(t, "Cableado", first.Subcategory)
	assert.Equal(t, "10", first.Stock1)
	assert.Equal(t, "2", first.StockOut)
	assert.Equal(t, "2025-06-03", first.OutDate, "la columna 'Out Date' debe mapearse a la fecha de salida")
	assert.Equal(t, "ana@example.com", first.CreatedBy)

	second := records[1]
	assert.Equal(t, "FER-001", second.Code)
	assert.Equal(t, "", second.Subcategory)
	assert.Equal(t, "", second.OutDate)
}

func TestEncode_EmiteLaCabeceraCompleta(t *testing.T) {
	codec := infracsv.NewCodec()

	var buf bytes.Buffer
	err := codec.Encode(&buf, []dto.ItemCSVRecord{{
		Code:        "NET-001",
		Description: "Cable UTP cat6",
		Category:    "Redes",
		Stock1:      "10",
		StockIn:     "15",
		OutDate:     "2025-06-03",
	}})
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"code,description,category,subcategory,stock1,stock2,stockIn,stockOut,balance,Out Date,purpose,balanceAfterReconciliation,createdBy,lastModifiedBy",
		strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "NET-001")
	assert.Contains(t, lines[1], "2025-06-03")
}

func TestDecodeEncode_RoundTripConservaLasFilas(t *testing.T) {
	codec := infracsv.NewCodec()

	records, err := codec.Decode(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, records))

	again, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}
