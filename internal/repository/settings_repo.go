package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"villaniva/internal/domain"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// unavailable_dates and seasonal_pricing are JSON text columns so the same
// schema works on SQLite and PostgreSQL.
type settingsModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	PricePerNight    float64   `gorm:"column:price_per_night"`
	MaxGuests        int       `gorm:"column:max_guests"`
	CleaningFee      float64   `gorm:"column:cleaning_fee"`
	TaxRate          float64   `gorm:"column:tax_rate"`
	MinStayNights    int       `gorm:"column:min_stay_nights"`
	UnavailableDates []byte    `gorm:"column:unavailable_dates;type:text"`
	SeasonalPricing  []byte    `gorm:"column:seasonal_pricing;type:text"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (settingsModel) TableName() string { return "villa_settings" }

func toDomainSettings(m settingsModel) (*domain.VillaSettings, error) {
	s := &domain.VillaSettings{
		ID:               m.ID,
		PricePerNight:    m.PricePerNight,
		MaxGuests:        m.MaxGuests,
		CleaningFee:      m.CleaningFee,
		TaxRate:          m.TaxRate,
		MinStayNights:    m.MinStayNights,
		UnavailableDates: []time.Time{},
		SeasonalPricing:  []domain.SeasonalRate{},
		UpdatedAt:        m.UpdatedAt,
	}

	if len(m.UnavailableDates) > 0 {
		if err := json.Unmarshal(m.UnavailableDates, &s.UnavailableDates); err != nil {
			return nil, err
		}
	}
	if len(m.SeasonalPricing) > 0 {
		if err := json.Unmarshal(m.SeasonalPricing, &s.SeasonalPricing); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func toSettingsModel(s *domain.VillaSettings) (settingsModel, error) {
	dates, err := json.Marshal(s.UnavailableDates)
	if err != nil {
		return settingsModel{}, err
	}
	seasons, err := json.Marshal(s.SeasonalPricing)
	if err != nil {
		return settingsModel{}, err
	}

	return settingsModel{
		ID:               s.ID,
		PricePerNight:    s.PricePerNight,
		MaxGuests:        s.MaxGuests,
		CleaningFee:      s.CleaningFee,
		TaxRate:          s.TaxRate,
		MinStayNights:    s.MinStayNights,
		UnavailableDates: dates,
		SeasonalPricing:  seasons,
		UpdatedAt:        s.UpdatedAt,
	}, nil
}

// GetOrCreate returns the singleton settings row, materializing it with
// defaults on first read.
func (r *SettingsRepository) GetOrCreate(ctx context.Context) (*domain.VillaSettings, error) {
	var m settingsModel
	tx := r.db.WithContext(ctx).Order("id").First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		defaults := domain.DefaultVillaSettings()
		defaults.UpdatedAt = time.Now().UTC()
		m, err := toSettingsModel(defaults)
		if err != nil {
			return nil, err
		}
		if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
			return nil, tx.Error
		}
		defaults.ID = m.ID
		return defaults, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSettings(m)
}

// Update overwrites the singleton row in place, creating it first if the
// record has never been read.
func (r *SettingsRepository) Update(ctx context.Context, s *domain.VillaSettings) (*domain.VillaSettings, error) {
	current, err := r.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	s.ID = current.ID
	s.UpdatedAt = time.Now().UTC()
	m, err := toSettingsModel(s)
	if err != nil {
		return nil, err
	}

	if tx := r.db.WithContext(ctx).Model(&settingsModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"price_per_night":   m.PricePerNight,
		"max_guests":        m.MaxGuests,
		"cleaning_fee":      m.CleaningFee,
		"tax_rate":          m.TaxRate,
		"min_stay_nights":   m.MinStayNights,
		"unavailable_dates": m.UnavailableDates,
		"seasonal_pricing":  m.SeasonalPricing,
		"updated_at":        m.UpdatedAt,
	}); tx.Error != nil {
		return nil, tx.Error
	}

	return toDomainSettings(m)
}
