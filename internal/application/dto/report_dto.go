package dto

import "github.com/shopspring/decimal"

// WeeklyStatsDTO un bucket del reporte semanal de movimientos.
// Week es el domingo que abre la semana (YYYY-MM-DD).
type WeeklyStatsDTO struct {
	Week         string          `json:"week"`
	StockIn      decimal.Decimal `json:"stock_in"`
	StockOut     decimal.Decimal `json:"stock_out"`
	NetChange    decimal.Decimal `json:"net_change"`
	Transactions int             `json:"transactions"`
}
