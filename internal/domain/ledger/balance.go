package ledger

import "github.com/shopspring/decimal"

// InitialStockIn implementa la regla de alta (servicio de dominio).
// StockIn = Stock1 + Stock2
func InitialStockIn(stock1, stock2 decimal.Decimal) decimal.Decimal {
	return stock1.Add(stock2)
}

// InitialBalance implementa la regla de alta.
// Balance = StockIn - StockOut
func InitialBalance(stockIn, stockOut decimal.Decimal) decimal.Decimal {
	return stockIn.Sub(stockOut)
}

// AdjustedBalance aplica los deltas de una edición sobre el balance almacenado.
//
// Los valores enviados (submittedIn/submittedOut) son absolutos: el caller ya
// sumó el delta del formulario al acumulado previo. Solo los AUMENTOS respecto
// del valor almacenado ajustan el balance; una disminución no lo reduce.
// Si entrada y salida aumentan en la misma edición, ambos ajustes aplican.
func AdjustedBalance(balance, priorIn, priorOut, submittedIn, submittedOut decimal.Decimal) decimal.Decimal {
	if submittedOut.GreaterThan(priorOut) {
		balance = balance.Sub(submittedOut.Sub(priorOut))
	}
	if submittedIn.GreaterThan(priorIn) {
		balance = balance.Add(submittedIn.Sub(priorIn))
	}
	return balance
}
