package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/content/model"
	"vitrine-backend/internal/domains/content/service"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContentHandler serves the section screens: listing, entry form, toggles, export
type ContentHandler struct {
	service service.ServiceInterface
	now     func() time.Time
}

func NewContentHandler(service service.ServiceInterface) *ContentHandler {
	return &ContentHandler{
		service: service,
		now:     time.Now,
	}
}

// -------------------------------------------------------------------
// SECTIONS
// -------------------------------------------------------------------

// ListSections returns the six categories with their counters
// @Router /v1/sections [get]
func (h *ContentHandler) ListSections(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Sections(c.Request.Context()))
}

// -------------------------------------------------------------------
// READ OPERATIONS
// -------------------------------------------------------------------

// ListItems is the listing view: search AND visibility filter over one category
// @Router /v1/sections/:category/items [get]
func (h *ContentHandler) ListItems(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.service.ListItems(c.Request.Context(), category, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Items, &response.Meta{
		Total:      result.Total,
		Matched:    result.Matched,
		EmptyState: result.EmptyState(),
	})
}

// GetItem returns one item
// @Router /v1/sections/:category/items/:id [get]
func (h *ContentHandler) GetItem(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), category, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// -------------------------------------------------------------------
// MUTATIONS
// -------------------------------------------------------------------

// CreateItem adds an item at the top of the category
// @Router /v1/sections/:category/items [post]
func (h *ContentHandler) CreateItem(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), category, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// UpdateItem applies a partial update (PATCH and PUT share it)
// @Router /v1/sections/:category/items/:id [patch]
func (h *ContentHandler) UpdateItem(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), category, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// DeleteItem removes an item
// @Router /v1/sections/:category/items/:id [delete]
func (h *ContentHandler) DeleteItem(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.service.DeleteItem(c.Request.Context(), category, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

// ToggleVisibility flips the visible flag of an item
// @Router /v1/sections/:category/items/:id/toggle-visibility [post]
func (h *ContentHandler) ToggleVisibility(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleVisibility(c.Request.Context(), category, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// -------------------------------------------------------------------
// EXPORT
// -------------------------------------------------------------------

// ExportItems streams the listing view as an xlsx workbook
// @Router /v1/sections/:category/export [get]
func (h *ContentHandler) ExportItems(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	f, rows, err := h.service.ExportItems(c.Request.Context(), category, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to write export workbook", err)
		response.ErrorResponse(c, http.StatusInternalServerError,
			string(model.ErrCodeExportFailed), "Export failed")
		return
	}

	fileName := service.ExportFileName(category, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Header("X-Export-Rows", fmt.Sprint(rows))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// -------------------------------------------------------------------
// HELPERS
// -------------------------------------------------------------------

func (h *ContentHandler) category(c *gin.Context) (model.Category, bool) {
	category, err := model.ParseCategory(c.Param("category"))
	if err != nil {
		h.handleError(c, err)
		return "", false
	}
	return category, true
}

func (h *ContentHandler) bindFilter(c *gin.Context) (model.ListFilter, bool) {
	var query model.ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return model.ListFilter{}, false
	}
	if err := query.Validate(); err != nil {
		h.handleError(c, err)
		return model.ListFilter{}, false
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.handleError(c, err)
		return model.ListFilter{}, false
	}
	return filter, true
}

func (h *ContentHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.Is(err, model.ErrItemNotFound):
		response.NotFound(c, string(model.ErrCodeItemNotFound), "Content item not found")
	case errors.Is(err, model.ErrUnknownCategory):
		response.NotFound(c, string(model.ErrCodeUnknownCategory), "Unknown section")
	case errors.Is(err, model.ErrInvalidVisibility):
		response.ValidationFailed(c, gin.H{"visibility": err.Error()})
	case errors.As(err, &validationErrs):
		response.ValidationFailed(c, validationErrs)
	default:
		logger.Error("Content request failed", err)
		response.ErrorResponse(c, http.StatusInternalServerError,
			string(model.ErrCodeInternalError), "Internal server error")
	}
}
