package booking

import (
	"context"
	"time"

	"villaniva/internal/domain"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindActiveOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Booking, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

// SettingsProvider hands out the singleton villa settings, materializing
// defaults when no record exists.
type SettingsProvider interface {
	GetOrCreate(ctx context.Context) (*domain.VillaSettings, error)
}
