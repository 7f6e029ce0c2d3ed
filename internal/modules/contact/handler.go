package contact

import (
	"net/http"

	"villaniva/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Inquiries are logged only; there is no persistence or delivery.
type Handler struct {
	logger *zerolog.Logger
}

func NewHandler(logger *zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitInquiry)
}

type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Message == "" {
		response.Error(c, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	h.logger.Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("phone", req.Phone).
		Str("message", req.Message).
		Msg("contact inquiry")

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your inquiry. We will get back to you soon!"})
}
