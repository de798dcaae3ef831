package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
)

// MetricsHandler datos JSON de los gráficos del dashboard.
type MetricsHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewMetricsHandler construye el handler.
func NewMetricsHandler(uc *appanalytics.DashboardUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// Sales godoc
// @Summary      Métricas de ventas (12 meses)
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesMetricsDTO
// @Router       /dados_dashboard_metricas [get]
func (h *MetricsHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.SalesMetrics(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Employees godoc
// @Summary      Métricas de funcionários
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmployeeMetricsDTO
// @Router       /dados_metricas_funcionarios [get]
func (h *MetricsHandler) Employees(c *fiber.Ctx) error {
	out, err := h.uc.EmployeeMetrics(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clients godoc
// @Summary      Métricas de clientes
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ClientMetricsDTO
// @Router       /dados_metricas_clientes [get]
func (h *MetricsHandler) Clients(c *fiber.Ctx) error {
	out, err := h.uc.ClientMetrics(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
