package response

import (
	"time"

	"storefront-cart/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	UnitPrice   float64    `json:"unit_price"`
	ImageURL    string     `json:"image_url,omitempty"`
	Stock       int        `json:"stock"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ProductListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	ImageURL  string    `json:"image_url,omitempty"`
	Stock     int       `json:"stock"`
}

func FromProductView(view *queries.ProductView) ProductResponse {
	return ProductResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		UnitPrice:   view.UnitPrice,
		ImageURL:    view.ImageURL,
		Stock:       view.Stock,
		CategoryID:  view.CategoryID,
		CreatedAt:   view.CreatedAt,
	}
}

func FromProductList(items []*queries.ProductListItem) []ProductListItemResponse {
	out := make([]ProductListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ProductListItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			ImageURL:  item.ImageURL,
			Stock:     item.Stock,
		})
	}
	return out
}
