package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/auth/model"
	"vitrine-backend/internal/domains/auth/service"
	"vitrine-backend/internal/shared/middleware"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(service service.ServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login issues an access token for the admin screens
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			response.ValidationFailed(c, validationErrs)
			return
		}
		logger.Error("Login failed", err)
		response.InternalServerError(c, "Login failed")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout revokes the token used for this request
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing credentials")
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		if errors.Is(err, model.ErrMissingJTI) {
			response.Unauthorized(c, "Token cannot be revoked")
			return
		}
		logger.Error("Logout failed", err)
		response.InternalServerError(c, "Logout failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// Me returns the identity carried by the token
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing credentials")
		return
	}

	response.Success(c, http.StatusOK, model.UserDTO{
		Email: claims.Email,
		Role:  claims.Role,
	})
}
