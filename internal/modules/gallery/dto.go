package gallery

type CreateImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}
