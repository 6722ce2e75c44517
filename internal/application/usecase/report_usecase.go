package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain/ledger"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// WeeklyReportPDFGenerator genera la representación PDF del reporte semanal
// (puerto implementado en infraestructura con Maroto).
type WeeklyReportPDFGenerator interface {
	GenerateWeeklyReport(ctx context.Context, stats []ledger.WeeklyStats, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase reportes sobre el libro de movimientos.
//
// La agregación semanal es una función pura sobre el historial COMPLETO de
// transacciones: se recalcula desde cero en cada llamada, sin estado
// incremental, así dos llamadas sobre el mismo historial dan el mismo resultado.
type ReportUseCase struct {
	txRepo repository.StockTransactionRepository
	pdf    WeeklyReportPDFGenerator // opcional; nil desactiva el PDF
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil.
func NewReportUseCase(txRepo repository.StockTransactionRepository, pdf WeeklyReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{txRepo: txRepo, pdf: pdf}
}

// WeeklyStats agrupa el historial por semana (domingo, calendario local) y
// devuelve los buckets de la más reciente a la más vieja.
func (uc *ReportUseCase) WeeklyStats(ctx context.Context) ([]dto.WeeklyStatsDTO, error) {
	txs, err := uc.txRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("historial de transacciones: %w", err)
	}
	stats := ledger.ComputeWeeklyStats(txs)
	out := make([]dto.WeeklyStatsDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.WeeklyStatsDTO{
			Week:         s.Week,
			StockIn:      s.StockIn,
			StockOut:     s.StockOut,
			NetChange:    s.NetChange,
			Transactions: s.Transactions,
		})
	}
	return out, nil
}

// WeeklyStatsPDF genera el reporte semanal como PDF.
func (uc *ReportUseCase) WeeklyStatsPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generador PDF no configurado")
	}
	txs, err := uc.txRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("historial de transacciones: %w", err)
	}
	stats := ledger.ComputeWeeklyStats(txs)
	return uc.pdf.GenerateWeeklyReport(ctx, stats, time.Now())
}
