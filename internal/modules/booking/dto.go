package booking

import (
	"time"

	"villaniva/internal/domain"
)

type CheckAvailabilityRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type CalculatePriceRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

type CreateBookingRequest struct {
	GuestName       string `json:"guestName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AvailabilityResult struct {
	Available           bool `json:"available"`
	ConflictingBookings int  `json:"conflictingBookings"`
	UnavailableDates    bool `json:"unavailableDates"`
}

type PriceBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Cleaning      float64 `json:"cleaning"`
	Taxes         float64 `json:"taxes"`
	Total         float64 `json:"total"`
}

type PriceQuote struct {
	Nights        int            `json:"nights"`
	PricePerNight float64        `json:"pricePerNight"`
	Subtotal      float64        `json:"subtotal"`
	CleaningFee   float64        `json:"cleaningFee"`
	Taxes         float64        `json:"taxes"`
	Total         float64        `json:"total"`
	Breakdown     PriceBreakdown `json:"breakdown"`
}

// CalendarDay carries the three per-day flags; a day is available only
// when it is neither booked nor blacked out.
type CalendarDay struct {
	Available   bool `json:"available"`
	Booked      bool `json:"booked"`
	Unavailable bool `json:"unavailable"`
}

// BookingSummary is the redacted view returned on creation.
type BookingSummary struct {
	ID         int64                `json:"id"`
	GuestName  string               `json:"guestName"`
	CheckIn    time.Time            `json:"checkIn"`
	CheckOut   time.Time            `json:"checkOut"`
	Guests     int                  `json:"guests"`
	TotalPrice float64              `json:"totalPrice"`
	Status     domain.BookingStatus `json:"status"`
}

type BookingList struct {
	Bookings    []domain.Booking `json:"bookings"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Total       int64            `json:"total"`
}

// CreateBookingInput is the service-level input after date parsing.
type CreateBookingInput struct {
	GuestName       string
	Email           string
	Phone           string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

const dateLayout = "2006-01-02"

// parseDate accepts plain calendar dates and RFC3339 timestamps, both
// normalized to midnight UTC so all range math works on whole days.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
