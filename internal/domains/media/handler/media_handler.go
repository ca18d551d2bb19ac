package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/media/model"
	"vitrine-backend/internal/domains/media/service"
	"vitrine-backend/internal/infrastructure/storage"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

const formFieldImage = "image"

type MediaHandler struct {
	service service.ServiceInterface
}

func NewMediaHandler(service service.ServiceInterface) *MediaHandler {
	return &MediaHandler{service: service}
}

// UploadImage stores an image from the entry form
// @Router /v1/media/images [post]
func (h *MediaHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, string(model.ErrCodeInvalidImage), model.MsgInvalidImage)
		return
	}

	if fileHeader.Size > storage.DefaultMaxImageSize {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, string(model.ErrCodeImageTooLarge), model.MsgImageTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, string(model.ErrCodeInvalidImage), model.MsgInvalidImage)
		return
	}
	defer file.Close()

	// one extra byte so an oversized body is still detected
	data, err := io.ReadAll(io.LimitReader(file, storage.DefaultMaxImageSize+1))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, string(model.ErrCodeInvalidImage), model.MsgInvalidImage)
		return
	}

	result, err := h.service.UploadImage(c.Request.Context(), data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// DeleteImage removes an image and its variants
// @Router /v1/media/images/:id [delete]
func (h *MediaHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteImage(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *MediaHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrImageTooLarge):
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, string(model.ErrCodeImageTooLarge), model.MsgImageTooLarge)
	case errors.Is(err, model.ErrInvalidImage):
		response.ErrorResponse(c, http.StatusBadRequest, string(model.ErrCodeInvalidImage), model.MsgInvalidImage)
	case errors.Is(err, model.ErrInvalidImageID):
		response.NotFound(c, string(model.ErrCodeImageNotFound), "Image not found")
	case errors.Is(err, model.ErrStorageUnavailable):
		logger.Warn("Media storage unavailable", map[string]interface{}{"error": err.Error()})
		response.ServiceUnavailable(c, string(model.ErrCodeMediaUnavailable), "Media storage is unavailable")
	default:
		logger.Error("Media request failed", err)
		response.ErrorResponse(c, http.StatusInternalServerError, string(model.ErrCodeInternalError), "Internal server error")
	}
}
