package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
)

// ReportHandler maneja los reportes agregados del libro (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// WeeklyStats godoc
// @Summary      Estadísticas semanales de movimientos
// @Description  Entradas, salidas, cambio neto y cantidad de movimientos por
// @Description  semana calendario (alineada al domingo), descendente.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WeeklyStatsDTO
// @Router       /api/reports/weekly [get]
func (h *ReportHandler) WeeklyStats(c *fiber.Ctx) error {
	out, err := h.uc.WeeklyStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// WeeklyStatsPDF godoc
// @Summary      Reporte semanal en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "PDF"
// @Router       /api/reports/weekly/pdf [get]
func (h *ReportHandler) WeeklyStatsPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.WeeklyStatsPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="weekly-report.pdf"`)
	return c.Send(pdf)
}
