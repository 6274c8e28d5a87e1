package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/dto"
	"github.com/yukikurage/empleo-joven-api/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.statsService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error al obtener estadísticas")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryDTO(*summary))
}

func (h *StatsHandler) YouthDashboard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.statsService.YouthDashboard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error al obtener estadísticas del joven")
		return
	}

	c.JSON(http.StatusOK, dto.ToYouthDashboardDTO(*dashboard))
}

func (h *StatsHandler) CompanyDashboard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.statsService.CompanyDashboard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error al obtener estadísticas de la empresa")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyDashboardDTO(*dashboard))
}

// AdminDashboard ignores any id in the path.
func (h *StatsHandler) AdminDashboard(c *gin.Context) {
	dashboard, err := h.statsService.AdminDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error al obtener estadísticas de administrador")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDashboardDTO(*dashboard))
}
