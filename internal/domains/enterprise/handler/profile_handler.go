package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/enterprise/model"
	"vitrine-backend/internal/shared/response"
)

// ProfileHandler serves the read-only company profile
type ProfileHandler struct {
	profile model.Profile
}

func NewProfileHandler(profile model.Profile) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// @Router /v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	response.Success(c, http.StatusOK, h.profile)
}
