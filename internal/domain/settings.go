package domain

import "time"

// Defaults applied when no settings record exists yet.
const (
	DefaultPricePerNight = 250.0
	DefaultMaxGuests     = 8
	DefaultCleaningFee   = 50.0
	DefaultTaxRate       = 0.12
	DefaultMinStayNights = 2
)

// SeasonalRate overrides the nightly price for a date window. The windows
// are stored with the settings but the pricing engine currently does not
// consult them; quotes always use the base nightly rate.
type SeasonalRate struct {
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	PricePerNight float64   `json:"pricePerNight"`
	Description   string    `json:"description,omitempty"`
}

// VillaSettings is the single configuration record for the property.
// At most one row exists; it is materialized with defaults on first read.
type VillaSettings struct {
	ID               int64          `json:"id"`
	PricePerNight    float64        `json:"pricePerNight" validate:"gte=0"`
	MaxGuests        int            `json:"maxGuests" validate:"gte=1"`
	CleaningFee      float64        `json:"cleaningFee" validate:"gte=0"`
	TaxRate          float64        `json:"taxRate" validate:"gte=0,lte=1"`
	MinStayNights    int            `json:"minStayNights" validate:"gte=1"`
	UnavailableDates []time.Time    `json:"unavailableDates"`
	SeasonalPricing  []SeasonalRate `json:"seasonalPricing"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func DefaultVillaSettings() *VillaSettings {
	return &VillaSettings{
		PricePerNight:    DefaultPricePerNight,
		MaxGuests:        DefaultMaxGuests,
		CleaningFee:      DefaultCleaningFee,
		TaxRate:          DefaultTaxRate,
		MinStayNights:    DefaultMinStayNights,
		UnavailableDates: []time.Time{},
		SeasonalPricing:  []SeasonalRate{},
	}
}

// IsBlackout reports whether day coincides with one of the admin-marked
// unavailable dates, compared by calendar day.
func (s *VillaSettings) IsBlackout(day time.Time) bool {
	y, m, d := day.Date()
	for _, ud := range s.UnavailableDates {
		uy, um, ud2 := ud.Date()
		if y == uy && m == um && d == ud2 {
			return true
		}
	}
	return false
}
