package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/dashboard/service"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type DashboardHandler struct {
	service service.ServiceInterface
}

func NewDashboardHandler(service service.ServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetOverview returns the dashboard cards and the active items total
// @Router /v1/dashboard [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard overview", err)
		response.InternalServerError(c, "Failed to build dashboard")
		return
	}

	response.Success(c, http.StatusOK, overview)
}
