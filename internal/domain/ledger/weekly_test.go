package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/ledger"
)

func tx(txType string, qty string, date time.Time) *entity.StockTransaction {
	return &entity.StockTransaction{
		ID:       "tx-" + qty + "-" + date.Format("20060102"),
		ItemID:   "item-1",
		Type:     txType,
		Quantity: dec(qty),
		Date:     date,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// WeekKey: alineación al domingo local
// ──────────────────────────────────────────────────────────────────────────────

func TestWeekKey_DomingoEsSuPropiaSemana(t *testing.T) {
	// 2025-06-01 es domingo.
	sunday := time.Date(2025, 6, 1, 15, 30, 0, 0, time.Local)
	assert.Equal(t, "2025-06-01", ledger.WeekKey(sunday))
}

func TestWeekKey_EntreSemanaRetrocedeAlDomingo(t *testing.T) {
	// Miércoles 2025-06-04 pertenece a la semana del domingo 2025-06-01.
	wednesday := time.Date(2025, 6, 4, 9, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-06-01", ledger.WeekKey(wednesday))

	// Sábado 2025-06-07, último día de la misma semana.
	saturday := time.Date(2025, 6, 7, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2025-06-01", ledger.WeekKey(saturday))
}

func TestWeekKey_CruceDeMes(t *testing.T) {
	// Lunes 2025-06-30 cae en la semana del domingo 2025-06-29.
	monday := time.Date(2025, 6, 30, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-06-29", ledger.WeekKey(monday))
	// Martes 2025-07-01 sigue en esa misma semana.
	tuesday := time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-06-29", ledger.WeekKey(tuesday))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeWeeklyStats: agrupación, acumulación y orden
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeWeeklyStats_AgrupaPorSemana(t *testing.T) {
	// Dos transacciones en la semana del 2025-06-01 y una en la siguiente.
	txs := []*entity.StockTransaction{
		tx(entity.TransactionTypeIn, "10", time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)),
		tx(entity.TransactionTypeOut, "4", time.Date(2025, 6, 5, 10, 0, 0, 0, time.Local)),
		tx(entity.TransactionTypeIn, "7", time.Date(2025, 6, 9, 10, 0, 0, 0, time.Local)),
	}

	stats := ledger.ComputeWeeklyStats(txs)
	require.Len(t, stats, 2)

	// Orden descendente: la semana más reciente primero.
	assert.Equal(t, "2025-06-08", stats[0].Week)
	assert.Equal(t, "2025-06-01", stats[1].Week)

	first := stats[1]
	assert.True(t, first.StockIn.Equal(dec("10")))
	assert.True(t, first.StockOut.Equal(dec("4")))
	assert.True(t, first.NetChange.Equal(dec("6")), "netChange debe ser stockIn - stockOut")
	assert.Equal(t, 2, first.Transactions)

	second := stats[0]
	assert.True(t, second.NetChange.Equal(dec("7")))
	assert.Equal(t, 1, second.Transactions)
}

func TestComputeWeeklyStats_LeyNetChange(t *testing.T) {
	txs := []*entity.StockTransaction{
		tx(entity.TransactionTypeIn, "5", time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)),
		tx(entity.TransactionTypeIn, "3", time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local)),
		tx(entity.TransactionTypeOut, "11", time.Date(2025, 6, 4, 0, 0, 0, 0, time.Local)),
	}
	stats := ledger.ComputeWeeklyStats(txs)
	require.Len(t, stats, 1)
	assert.True(t, stats[0].NetChange.Equal(stats[0].StockIn.Sub(stats[0].StockOut)))
	assert.True(t, stats[0].NetChange.Equal(dec("-3")), "el neto puede quedar negativo")
}

func TestComputeWeeklyStats_EsIdempotente(t *testing.T) {
	// Derivación pura del historial: dos cómputos sobre el mismo input son iguales.
	txs := []*entity.StockTransaction{
		tx(entity.TransactionTypeIn, "10", time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)),
		tx(entity.TransactionTypeOut, "2", time.Date(2025, 6, 12, 10, 0, 0, 0, time.Local)),
	}
	a := ledger.ComputeWeeklyStats(txs)
	b := ledger.ComputeWeeklyStats(txs)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Week, b[i].Week)
		assert.True(t, a[i].NetChange.Equal(b[i].NetChange))
		assert.Equal(t, a[i].Transactions, b[i].Transactions)
	}
}

func TestComputeWeeklyStats_SalidaCantidadCeroCuentaComoMovimiento(t *testing.T) {
	// El asiento de baja (cantidad cero) cuenta en Transactions pero no mueve montos.
	txs := []*entity.StockTransaction{
		tx(entity.TransactionTypeOut, "0", time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)),
	}
	stats := ledger.ComputeWeeklyStats(txs)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Transactions)
	assert.True(t, stats[0].StockOut.IsZero())
	assert.True(t, stats[0].NetChange.IsZero())
}

func TestComputeWeeklyStats_SinTransacciones(t *testing.T) {
	stats := ledger.ComputeWeeklyStats(nil)
	assert.Empty(t, stats)
}
