package settings

import (
	"errors"
	"net/http"

	"villaniva/internal/pkg/response"
	"villaniva/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/villa/settings", h.GetSettings)
	rg.PUT("/villa/settings", h.UpdateSettings)
}

func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid settings values")
		return
	}

	v, err := req.toDomain()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), v)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Invalid seasonal pricing window")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, updated)
}
