package handler

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/domains/media/model"
	"vitrine-backend/internal/domains/media/service"
	"vitrine-backend/internal/infrastructure/storage"
)

func newRouter(svc service.ServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMediaHandler(svc)
	r := gin.New()
	r.POST("/media/images", h.UploadImage)
	r.DELETE("/media/images/:id", h.DeleteImage)
	return r
}

func multipartRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestMediaHandler_UploadWithoutStorage(t *testing.T) {
	r := newRouter(service.NewMediaService(nil, storage.NewImageProcessor(), nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "image", pngData(t)))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), string(model.ErrCodeMediaUnavailable))
}

func TestMediaHandler_UploadRejectsNonImage(t *testing.T) {
	r := newRouter(service.NewMediaService(nil, storage.NewImageProcessor(), nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "file", pngData(t)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.MsgInvalidImage)
}

func TestMediaHandler_UploadTooLarge(t *testing.T) {
	r := newRouter(service.NewMediaService(nil, storage.NewImageProcessor(), nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "image", make([]byte, storage.DefaultMaxImageSize+1)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), string(model.ErrCodeImageTooLarge))
}

func TestMediaHandler_DeleteImage(t *testing.T) {
	r := newRouter(service.NewMediaService(nil, storage.NewImageProcessor(), nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/media/images/not-a-uuid", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/media/images/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
