package repository

import (
	"context"
	"time"

	"villaniva/internal/domain"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type galleryModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	ImageURL    string    `gorm:"column:image_url"`
	Category    string    `gorm:"column:category;index"`
	Order       int       `gorm:"column:display_order"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (galleryModel) TableName() string { return "gallery_images" }

func toDomainImage(m galleryModel) *domain.GalleryImage {
	return &domain.GalleryImage{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Category:    domain.GalleryCategory(m.Category),
		Order:       m.Order,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func toGalleryModel(img *domain.GalleryImage) galleryModel {
	return galleryModel{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		ImageURL:    img.ImageURL,
		Category:    string(img.Category),
		Order:       img.Order,
		IsActive:    img.IsActive,
		CreatedAt:   img.CreatedAt,
	}
}

// ListActive returns active images, optionally filtered by category,
// ordered by display order then recency.
func (r *GalleryRepository) ListActive(ctx context.Context, category string) ([]domain.GalleryImage, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []galleryModel
	tx := q.Order("display_order ASC").Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.GalleryImage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainImage(m))
	}
	return out, nil
}

func (r *GalleryRepository) Create(ctx context.Context, img *domain.GalleryImage) error {
	m := toGalleryModel(img)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*img = *toDomainImage(m)
	return nil
}
