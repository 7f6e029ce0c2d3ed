package gallery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"villaniva/internal/database"
	"villaniva/internal/domain"
	"villaniva/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	service := NewService(repository.NewGalleryRepository(db))
	handler := NewHandler(service)

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndListImages(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/gallery", CreateImageRequest{
		Title:    "Villa Exterior",
		ImageURL: "/images/exterior-1.jpg",
		Category: "exterior",
		Order:    1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.GalleryImage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.IsActive)
	assert.Equal(t, domain.CategoryExterior, created.Category)

	w = performRequest(router, http.MethodGet, "/api/gallery", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var images []domain.GalleryImage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, "Villa Exterior", images[0].Title)

	// Category filter.
	w = performRequest(router, http.MethodGet, "/api/gallery?category=bedroom", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	assert.Empty(t, images)
}

func TestCreateImage_DefaultsToInterior(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/gallery", CreateImageRequest{
		Title:    "Living Room",
		ImageURL: "/images/living.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.GalleryImage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, domain.CategoryInterior, created.Category)
}

func TestCreateImage_InvalidCategory(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/gallery", CreateImageRequest{
		ImageURL: "/images/pool.jpg",
		Category: "pool",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid category"}`, w.Body.String())
}

func TestCreateImage_MissingURL(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/gallery", CreateImageRequest{Title: "No URL"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListImages_InvalidCategory(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/api/gallery?category=garage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
