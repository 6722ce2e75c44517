package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stock-ledger/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de alta: StockIn = Stock1 + Stock2; Balance = StockIn - StockOut
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialStockIn_SumaAmbosDepositos(t *testing.T) {
	got := ledger.InitialStockIn(dec("15"), dec("12"))
	assert.True(t, got.Equal(dec("27")), "stockIn debe ser stock1 + stock2, got %s", got)
}

func TestInitialBalance_RestaLaSalida(t *testing.T) {
	stockIn := ledger.InitialStockIn(dec("15"), dec("12"))
	got := ledger.InitialBalance(stockIn, dec("3"))
	assert.True(t, got.Equal(dec("24")), "balance debe ser stockIn - stockOut, got %s", got)
}

func TestInitialBalance_SalidaCero(t *testing.T) {
	got := ledger.InitialBalance(dec("27"), decimal.Zero)
	assert.True(t, got.Equal(dec("27")))
}

func TestInitialBalance_PuedeQuedarNegativo(t *testing.T) {
	// La salida puede superar la entrada: el libro registra el faltante tal cual.
	got := ledger.InitialBalance(dec("5"), dec("8"))
	assert.True(t, got.Equal(dec("-3")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla de edición: solo los AUMENTOS ajustan el balance
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustedBalance_AumentoDeEntrada(t *testing.T) {
	// Almacenado: in=5, out=3, balance=24. Entrada sube a 7 → balance 26.
	got := ledger.AdjustedBalance(dec("24"), dec("5"), dec("3"), dec("7"), dec("3"))
	assert.True(t, got.Equal(dec("26")), "un aumento de entrada de 2 debe sumar 2 al balance, got %s", got)
}

func TestAdjustedBalance_AumentoDeSalida(t *testing.T) {
	got := ledger.AdjustedBalance(dec("24"), dec("5"), dec("3"), dec("5"), dec("6"))
	assert.True(t, got.Equal(dec("21")), "un aumento de salida de 3 debe restar 3 al balance, got %s", got)
}

func TestAdjustedBalance_AumentoSimultaneo(t *testing.T) {
	// Entrada +2 y salida +3 en la misma edición: ambos ajustes aplican.
	got := ledger.AdjustedBalance(dec("24"), dec("5"), dec("3"), dec("7"), dec("6"))
	assert.True(t, got.Equal(dec("23")))
}

func TestAdjustedBalance_DisminucionNoAjusta(t *testing.T) {
	// Asimetría deliberada del conciliador: una disminución de entrada o de
	// salida respecto del valor almacenado NO toca el balance.
	got := ledger.AdjustedBalance(dec("24"), dec("5"), dec("3"), dec("4"), dec("2"))
	assert.True(t, got.Equal(dec("24")), "las disminuciones no deben alterar el balance, got %s", got)
}

func TestAdjustedBalance_SinCambios(t *testing.T) {
	got := ledger.AdjustedBalance(dec("24"), dec("5"), dec("3"), dec("5"), dec("3"))
	assert.True(t, got.Equal(dec("24")))
}

func TestAdjustedBalance_CantidadesFraccionarias(t *testing.T) {
	got := ledger.AdjustedBalance(dec("10.5"), dec("2.25"), dec("1"), dec("3"), dec("1"))
	assert.True(t, got.Equal(dec("11.25")))
}
