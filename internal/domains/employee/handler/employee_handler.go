package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/employee/service"
	"vitrine-backend/internal/shared/response"
)

type EmployeeHandler struct {
	service service.ServiceInterface
}

func NewEmployeeHandler(service service.ServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// ListActive returns the active employees
// @Router /v1/employees [get]
func (h *EmployeeHandler) ListActive(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.ActiveRoster(c.Request.Context()))
}
