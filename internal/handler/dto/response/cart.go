package response

import (
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
	StockHint *int    `json:"stock_hint,omitempty"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	Total         float64            `json:"total"`
	TotalQuantity int                `json:"total_quantity"`
}

type CheckoutResponse struct {
	OrderID uuid.UUID `json:"order_id"`
	Total   float64   `json:"total"`
}

func FromCartView(view *queries.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			StockHint: item.StockHint,
		})
	}
	return CartResponse{
		Items:         items,
		Total:         view.Total,
		TotalQuantity: view.TotalQuantity,
	}
}

func FromCheckoutResult(result *commands.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID: result.OrderID,
		Total:   result.Total,
	}
}
