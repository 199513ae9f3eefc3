package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tillpoint-api/internal/application/service"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves terminal-level statistics
type DashboardHandler struct {
	saleService  *service.SaleService
	statsService *service.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(saleService *service.SaleService, statsService *service.StatsService) *DashboardHandler {
	return &DashboardHandler{saleService: saleService, statsService: statsService}
}

// Stats returns the register balance and accumulated sales statistics
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats := h.statsService.Snapshot()
	response.Success(c, http.StatusOK, "Terminal statistics", gin.H{
		"register_balance": h.saleService.RegisterBalance(),
		"sales":            stats,
	})
}
