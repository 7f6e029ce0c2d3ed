package repository

import (
	"context"
	"testing"
	"time"

	"villaniva/internal/database"
	"villaniva/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func newBooking(t *testing.T, checkIn, checkOut string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	now := time.Now().UTC()
	return &domain.Booking{
		GuestName:     "Guest",
		Email:         "guest@example.com",
		Phone:         "+1-555-0100",
		CheckIn:       day(t, checkIn),
		CheckOut:      day(t, checkOut),
		Guests:        2,
		TotalPrice:    500,
		Status:        status,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestBookingRepository_FindActiveOverlapping(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(t, "2025-09-10", "2025-09-13", domain.BookingPending)))
	require.NoError(t, repo.Create(ctx, newBooking(t, "2025-09-13", "2025-09-15", domain.BookingCancelled)))

	// Candidate starting exactly on the pending booking's checkout day:
	// half-open ranges, no conflict. The cancelled booking never counts.
	got, err := repo.FindActiveOverlapping(ctx, day(t, "2025-09-13"), day(t, "2025-09-16"))
	require.NoError(t, err)
	assert.Empty(t, got)

	// Candidate ending exactly on the pending booking's check-in day.
	got, err = repo.FindActiveOverlapping(ctx, day(t, "2025-09-08"), day(t, "2025-09-10"))
	require.NoError(t, err)
	assert.Empty(t, got)

	// Partial overlap on the tail.
	got, err = repo.FindActiveOverlapping(ctx, day(t, "2025-09-12"), day(t, "2025-09-14"))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Partial overlap on the head.
	got, err = repo.FindActiveOverlapping(ctx, day(t, "2025-09-08"), day(t, "2025-09-11"))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Candidate fully containing the existing booking.
	got, err = repo.FindActiveOverlapping(ctx, day(t, "2025-09-01"), day(t, "2025-09-30"))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Candidate fully inside the existing booking.
	got, err = repo.FindActiveOverlapping(ctx, day(t, "2025-09-11"), day(t, "2025-09-12"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBookingRepository_OverlapIsSymmetric(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	a := newBooking(t, "2025-10-01", "2025-10-05", domain.BookingConfirmed)
	require.NoError(t, repo.Create(ctx, a))

	// B overlaps A; once B exists, A's range must also report a conflict.
	b := newBooking(t, "2025-10-03", "2025-10-08", domain.BookingPending)
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindActiveOverlapping(ctx, a.CheckIn, a.CheckOut)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindActiveOverlapping(ctx, b.CheckIn, b.CheckOut)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingRepository_List(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(t, "2025-09-01", "2025-09-03", domain.BookingConfirmed)))
	require.NoError(t, repo.Create(ctx, newBooking(t, "2025-09-05", "2025-09-07", domain.BookingPending)))
	require.NoError(t, repo.Create(ctx, newBooking(t, "2025-09-10", "2025-09-12", domain.BookingPending)))

	all, total, err := repo.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	pending, total, err := repo.List(ctx, "pending", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, pending, 2)

	paged, total, err := repo.List(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, paged, 1)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(t, "2025-09-01", "2025-09-03", domain.BookingPending)
	require.NoError(t, repo.Create(ctx, b))

	updated, err := repo.UpdateStatus(ctx, b.ID, domain.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, updated.Status)

	_, err = repo.UpdateStatus(ctx, 9999, domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingRepository_SpecialRequestsRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(t, "2025-09-01", "2025-09-03", domain.BookingPending)
	b.SpecialRequests = "Late arrival, around midnight"
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Late arrival, around midnight", got.SpecialRequests)
}
