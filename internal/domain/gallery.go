package domain

import "time"

type GalleryCategory string

const (
	CategoryExterior GalleryCategory = "exterior"
	CategoryInterior GalleryCategory = "interior"
	CategoryBedroom  GalleryCategory = "bedroom"
	CategoryBathroom GalleryCategory = "bathroom"
	CategoryKitchen  GalleryCategory = "kitchen"
	CategoryView     GalleryCategory = "view"
)

func ValidGalleryCategory(c GalleryCategory) bool {
	switch c {
	case CategoryExterior, CategoryInterior, CategoryBedroom, CategoryBathroom, CategoryKitchen, CategoryView:
		return true
	}
	return false
}

type GalleryImage struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"imageUrl" validate:"required"`
	Category    GalleryCategory `json:"category"`
	Order       int             `json:"order"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}
