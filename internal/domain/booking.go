package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that block a date range for new bookings.
var ActiveStatuses = []BookingStatus{BookingPending, BookingConfirmed}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID              int64         `json:"id"`
	GuestName       string        `json:"guestName" validate:"required"`
	Email           string        `json:"email" validate:"required,email"`
	Phone           string        `json:"phone" validate:"required"`
	CheckIn         time.Time     `json:"checkIn" validate:"required"`
	CheckOut        time.Time     `json:"checkOut" validate:"required"`
	Guests          int           `json:"guests" validate:"required,gte=1,lte=8"`
	TotalPrice      float64       `json:"totalPrice" validate:"gte=0"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Overlaps reports whether the booking occupies any night of
// [checkIn, checkOut). Ranges are half-open: a booking that checks out
// on checkIn does not conflict with a new check-in that same day.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}
