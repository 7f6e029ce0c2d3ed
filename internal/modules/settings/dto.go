package settings

import (
	"time"

	"villaniva/internal/domain"
)

type SeasonalRateRequest struct {
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	PricePerNight float64 `json:"pricePerNight"`
	Description   string  `json:"description"`
}

type UpdateSettingsRequest struct {
	PricePerNight    float64               `json:"pricePerNight" validate:"gte=0"`
	MaxGuests        int                   `json:"maxGuests" validate:"gte=1"`
	CleaningFee      float64               `json:"cleaningFee" validate:"gte=0"`
	TaxRate          float64               `json:"taxRate" validate:"gte=0,lte=1"`
	MinStayNights    int                   `json:"minStayNights" validate:"gte=1"`
	UnavailableDates []string              `json:"unavailableDates"`
	SeasonalPricing  []SeasonalRateRequest `json:"seasonalPricing"`
}

const dateLayout = "2006-01-02"

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

func (r *UpdateSettingsRequest) toDomain() (*domain.VillaSettings, error) {
	dates := make([]time.Time, 0, len(r.UnavailableDates))
	for _, s := range r.UnavailableDates {
		d, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	seasons := make([]domain.SeasonalRate, 0, len(r.SeasonalPricing))
	for _, w := range r.SeasonalPricing {
		start, err := parseDate(w.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(w.EndDate)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, domain.SeasonalRate{
			StartDate:     start,
			EndDate:       end,
			PricePerNight: w.PricePerNight,
			Description:   w.Description,
		})
	}

	return &domain.VillaSettings{
		PricePerNight:    r.PricePerNight,
		MaxGuests:        r.MaxGuests,
		CleaningFee:      r.CleaningFee,
		TaxRate:          r.TaxRate,
		MinStayNights:    r.MinStayNights,
		UnavailableDates: dates,
		SeasonalPricing:  seasons,
	}, nil
}
