package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// WeeklyStats resume el movimiento de una semana calendario.
// Week es la fecha del domingo que abre la semana, en formato YYYY-MM-DD.
type WeeklyStats struct {
	Week         string
	StockIn      decimal.Decimal
	StockOut     decimal.Decimal
	NetChange    decimal.Decimal
	Transactions int
}

// ComputeWeeklyStats agrupa el historial completo de transacciones por semana
// (alineada a domingo, calendario local, sin hora) y acumula entradas, salidas,
// cambio neto y conteo por bucket. Se recalcula desde cero en cada llamada; no
// hay actualización incremental.
//
// El resultado viene ordenado por semana descendente (la más reciente primero).
func ComputeWeeklyStats(transactions []*entity.StockTransaction) []WeeklyStats {
	buckets := make(map[string]*WeeklyStats)

	for _, tx := range transactions {
		key := WeekKey(tx.Date)
		b, ok := buckets[key]
		if !ok {
			b = &WeeklyStats{
				Week:      key,
				StockIn:   decimal.Zero,
				StockOut:  decimal.Zero,
				NetChange: decimal.Zero,
			}
			buckets[key] = b
		}
		b.Transactions++
		if tx.Type == entity.TransactionTypeIn {
			b.StockIn = b.StockIn.Add(tx.Quantity)
			b.NetChange = b.NetChange.Add(tx.Quantity)
		} else {
			b.StockOut = b.StockOut.Add(tx.Quantity)
			b.NetChange = b.NetChange.Sub(tx.Quantity)
		}
	}

	stats := make([]WeeklyStats, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, *b)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Week > stats[j].Week
	})
	return stats
}

// WeekKey devuelve la fecha del domingo que abre la semana de la fecha dada,
// en el calendario local de la fecha y con la hora truncada.
func WeekKey(date time.Time) string {
	start := date.AddDate(0, 0, -int(date.Weekday()))
	return start.Format("2006-01-02")
}
