package settings

import (
	"context"
	"errors"

	"villaniva/internal/domain"
)

var ErrValidation = errors.New("invalid settings")

// SettingsRepository is the persistence surface for the singleton record.
type SettingsRepository interface {
	GetOrCreate(ctx context.Context) (*domain.VillaSettings, error)
	Update(ctx context.Context, s *domain.VillaSettings) (*domain.VillaSettings, error)
}

type Service struct {
	repo SettingsRepository
}

func NewService(repo SettingsRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*domain.VillaSettings, error) {
	return s.repo.GetOrCreate(ctx)
}

func (s *Service) Update(ctx context.Context, v *domain.VillaSettings) (*domain.VillaSettings, error) {
	for _, w := range v.SeasonalPricing {
		if !w.EndDate.After(w.StartDate) || w.PricePerNight < 0 {
			return nil, ErrValidation
		}
	}
	return s.repo.Update(ctx, v)
}
