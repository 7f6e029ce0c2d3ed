package booking

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"villaniva/internal/domain"
	"villaniva/internal/metrics"
	"villaniva/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type Service struct {
	bookings BookingRepository
	settings SettingsProvider
	logger   *zerolog.Logger

	// Serializes the availability check against the booking insert.
	// A single property means a single lock; on PostgreSQL the
	// bookings_no_overlap constraint is the second line of defense.
	mu sync.Mutex
}

func NewService(bookings BookingRepository, settings SettingsProvider, logger *zerolog.Logger) *Service {
	return &Service{
		bookings: bookings,
		settings: settings,
		logger:   logger,
	}
}

// CheckAvailability reconciles existing active bookings and admin blackout
// dates for the half-open range [checkIn, checkOut). Read-only.
func (s *Service) CheckAvailability(ctx context.Context, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrDateOrder
	}

	conflicts, err := s.bookings.FindActiveOverlapping(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	hasBlackout := false
	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		if settings.IsBlackout(day) {
			hasBlackout = true
			break
		}
	}

	return &AvailabilityResult{
		Available:           len(conflicts) == 0 && !hasBlackout,
		ConflictingBookings: len(conflicts),
		UnavailableDates:    hasBlackout,
	}, nil
}

// BuildCalendar returns per-day flags for every day of the given month,
// keyed by YYYY-MM-DD.
func (s *Service) BuildCalendar(ctx context.Context, year, month int) (map[string]CalendarDay, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	bookings, err := s.bookings.FindActiveOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	calendar := make(map[string]CalendarDay)
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		entry := CalendarDay{Available: true}

		if settings.IsBlackout(day) {
			entry.Unavailable = true
			entry.Available = false
		}

		for i := range bookings {
			if bookings[i].Overlaps(day, day.AddDate(0, 0, 1)) {
				entry.Booked = true
				entry.Available = false
				break
			}
		}

		calendar[day.Format(dateLayout)] = entry
	}
	return calendar, nil
}

// CalculatePrice quotes the range from the singleton settings. Seasonal
// windows are stored but not applied; the base nightly rate always wins.
// The guest count does not affect the price.
func (s *Service) CalculatePrice(ctx context.Context, checkIn, checkOut time.Time, guests int) (*PriceQuote, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrDateOrder
	}

	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	subtotal := float64(nights) * settings.PricePerNight
	taxes := subtotal * settings.TaxRate
	total := subtotal + settings.CleaningFee + taxes

	return &PriceQuote{
		Nights:        nights,
		PricePerNight: settings.PricePerNight,
		Subtotal:      subtotal,
		CleaningFee:   settings.CleaningFee,
		Taxes:         taxes,
		Total:         total,
		Breakdown: PriceBreakdown{
			Accommodation: subtotal,
			Cleaning:      settings.CleaningFee,
			Taxes:         taxes,
			Total:         total,
		},
	}, nil
}

// CreateBooking validates the request, re-checks availability, prices the
// stay and persists a pending booking. The check and the insert run under
// the service lock so two overlapping submissions cannot both succeed.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	if in.GuestName == "" || in.Email == "" || in.Phone == "" || in.Guests == 0 ||
		in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil, ErrMissingFields
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, ErrDateOrder
	}

	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if in.Guests < 1 || in.Guests > settings.MaxGuests {
		return nil, ErrGuestCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	avail, err := s.CheckAvailability(ctx, in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		metrics.IncBookingConflict()
		return nil, ErrNotAvailable
	}

	quote, err := s.CalculatePrice(ctx, in.CheckIn, in.CheckOut, in.Guests)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		GuestName:       in.GuestName,
		Email:           in.Email,
		Phone:           in.Phone,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          in.Guests,
		TotalPrice:      quote.Total,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		SpecialRequests: in.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "bookings_no_overlap" {
			metrics.IncBookingConflict()
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	s.logger.Info().
		Int64("booking_id", b.ID).
		Str("check_in", b.CheckIn.Format(dateLayout)).
		Str("check_out", b.CheckOut.Format(dateLayout)).
		Float64("total", b.TotalPrice).
		Msg("booking created")

	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, status string, page, limit int) (*BookingList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	bookings, total, err := s.bookings.List(ctx, status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &BookingList{
		Bookings:    bookings,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

// UpdateStatus overwrites the status without transition checks; only enum
// membership is enforced.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	b, err := s.bookings.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}
