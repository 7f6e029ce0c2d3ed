package gallery

import (
	"context"
	"errors"
	"time"

	"villaniva/internal/domain"
)

var ErrInvalidCategory = errors.New("invalid gallery category")

type GalleryRepository interface {
	ListActive(ctx context.Context, category string) ([]domain.GalleryImage, error)
	Create(ctx context.Context, img *domain.GalleryImage) error
}

type Service struct {
	repo GalleryRepository
}

func NewService(repo GalleryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.GalleryImage, error) {
	if category != "" && !domain.ValidGalleryCategory(domain.GalleryCategory(category)) {
		return nil, ErrInvalidCategory
	}
	return s.repo.ListActive(ctx, category)
}

func (s *Service) Create(ctx context.Context, req CreateImageRequest) (*domain.GalleryImage, error) {
	category := domain.GalleryCategory(req.Category)
	if req.Category == "" {
		category = domain.CategoryInterior
	}
	if !domain.ValidGalleryCategory(category) {
		return nil, ErrInvalidCategory
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	img := &domain.GalleryImage{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    category,
		Order:       req.Order,
		IsActive:    active,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}
