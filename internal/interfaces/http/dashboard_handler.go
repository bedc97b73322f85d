package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/analytics"
)

// DashboardHandler maneja las peticiones HTTP del tablero.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del mes en curso
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FinancialMetrics godoc
// @Summary      Serie mensual de métricas financieras
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  entity.FinancialMetrics
// @Router       /api/dashboard/financial-metrics [get]
func (h *DashboardHandler) FinancialMetrics(c *fiber.Ctx) error {
	out, err := h.uc.FinancialSeries(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesMetrics godoc
// @Summary      Serie mensual de métricas de ventas
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  entity.SalesMetrics
// @Router       /api/dashboard/sales-metrics [get]
func (h *DashboardHandler) SalesMetrics(c *fiber.Ctx) error {
	out, err := h.uc.SalesSeries(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
