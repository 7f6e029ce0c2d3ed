package repository

import (
	"context"
	"errors"
	"time"

	"villaniva/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	GuestName       string    `gorm:"column:guest_name"`
	Email           string    `gorm:"column:email"`
	Phone           string    `gorm:"column:phone"`
	CheckIn         time.Time `gorm:"column:check_in;index"`
	CheckOut        time.Time `gorm:"column:check_out;index"`
	Guests          int       `gorm:"column:guests"`
	TotalPrice      float64   `gorm:"column:total_price"`
	Status          string    `gorm:"column:status;index"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var requests string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.Booking{
		ID:              m.ID,
		GuestName:       m.GuestName,
		Email:           m.Email,
		Phone:           m.Phone,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		Guests:          m.Guests,
		TotalPrice:      m.TotalPrice,
		Status:          domain.BookingStatus(m.Status),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		SpecialRequests: requests,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var requests *string
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		requests = &v
	}

	return bookingModel{
		ID:              b.ID,
		GuestName:       b.GuestName,
		Email:           b.Email,
		Phone:           b.Phone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		SpecialRequests: requests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func activeStatuses() []string {
	out := make([]string, 0, len(domain.ActiveStatuses))
	for _, s := range domain.ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// FindActiveOverlapping returns pending/confirmed bookings whose half-open
// [check_in, check_out) range intersects [checkIn, checkOut).
func (r *BookingRepository) FindActiveOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status IN ?", activeStatuses()).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if tx := q.Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var rows []bookingModel
	tx := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}
