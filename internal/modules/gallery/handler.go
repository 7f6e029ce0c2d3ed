package gallery

import (
	"errors"
	"net/http"

	"villaniva/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/gallery", h.ListImages)
	rg.POST("/gallery", h.CreateImage)
}

func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.Error(c, http.StatusBadRequest, "Invalid category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch gallery")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *Handler) CreateImage(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		response.Error(c, http.StatusBadRequest, "Image URL is required")
		return
	}

	img, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.Error(c, http.StatusBadRequest, "Invalid category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create image")
		return
	}
	c.JSON(http.StatusCreated, img)
}
