package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	content "vitrine-backend/internal/domains/content/model"
	"vitrine-backend/internal/domains/content/repository"
	"vitrine-backend/internal/domains/dashboard/model"
	"vitrine-backend/internal/domains/dashboard/service"
)

func TestDashboardHandler_GetOverview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	var featured []content.Item
	for _, id := range []string{"f1", "f2", "f3", "f4"} {
		featured = append(featured, content.Item{ID: id, Name: id, Content: "x", Visible: true, CreatedAt: now, UpdatedAt: now})
	}
	reg, err := repository.NewRegistry(map[content.Category][]content.Item{content.CategoryFeatured: featured})
	require.NoError(t, err)

	h := NewDashboardHandler(service.NewDashboardService(reg, nil, 0))
	r := gin.New()
	r.GET("/dashboard", h.GetOverview)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    model.Overview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 4, body.Data.TotalActive)

	last := body.Data.Categories[len(body.Data.Categories)-1]
	assert.Equal(t, content.CategoryFeatured, last.Category)
	assert.Len(t, last.Previews, 3)
	assert.Equal(t, "+1 autres", last.MoreLabel)
}
