package booking

import (
	"errors"
	"net/http"
	"strconv"

	"villaniva/internal/domain"
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
	rg.POST("/bookings/check-availability", h.CheckAvailability)
	rg.GET("/bookings/calendar/:year/:month", h.Calendar)
	rg.POST("/bookings/calculate-price", h.CalculatePrice)
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id/status", h.UpdateStatus)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CheckIn == "" || req.CheckOut == "" {
		response.Error(c, http.StatusBadRequest, "Check-in and check-out are required")
		return
	}

	checkIn, err1 := parseDate(req.CheckIn)
	checkOut, err2 := parseDate(req.CheckOut)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date format")
		return
	}
	if !checkOut.After(checkIn) {
		response.Error(c, http.StatusBadRequest, "Check-out must be after check-in")
		return
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Calendar(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 || year < 1 {
		response.Error(c, http.StatusBadRequest, "Invalid year or month")
		return
	}

	calendar, err := h.service.BuildCalendar(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, calendar)
}

func (h *Handler) CalculatePrice(c *gin.Context) {
	var req CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CheckIn == "" || req.CheckOut == "" || req.Guests == 0 {
		response.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	checkIn, err1 := parseDate(req.CheckIn)
	checkOut, err2 := parseDate(req.CheckOut)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date format")
		return
	}
	if !checkOut.After(checkIn) {
		response.Error(c, http.StatusBadRequest, "Check-out must be after check-in")
		return
	}

	quote, err := h.service.CalculatePrice(c.Request.Context(), checkIn, checkOut, req.Guests)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to calculate price")
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.GuestName == "" || req.Email == "" || req.Phone == "" ||
		req.CheckIn == "" || req.CheckOut == "" || req.Guests == 0 {
		response.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	checkIn, err1 := parseDate(req.CheckIn)
	checkOut, err2 := parseDate(req.CheckOut)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), CreateBookingInput{
		GuestName:       req.GuestName,
		Email:           req.Email,
		Phone:           req.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrDateOrder):
			response.Error(c, http.StatusBadRequest, "Check-out must be after check-in")
		case errors.Is(err, ErrGuestCount):
			response.Error(c, http.StatusBadRequest, "Invalid number of guests")
		case errors.Is(err, ErrNotAvailable):
			response.Error(c, http.StatusBadRequest, "Dates are not available")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": BookingSummary{
			ID:         b.ID,
			GuestName:  b.GuestName,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Guests:     b.Guests,
			TotalPrice: b.TotalPrice,
			Status:     b.Status,
		},
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	status := c.Query("status")

	page := 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		page = v
	}
	limit := 10
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	list, err := h.service.ListBookings(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Booking not found")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Booking not found")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		response.Error(c, http.StatusBadRequest, "Status is required")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}
	c.JSON(http.StatusOK, b)
}
