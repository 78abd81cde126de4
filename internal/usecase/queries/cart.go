package queries

import (
	"context"

	"storefront-cart/internal/usecase/shared"
)

type CartItemView struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
	StockHint *int
}

type CartView struct {
	Items         []CartItemView
	Total         float64
	TotalQuantity int
}

type CartQueries interface {
	Get(ctx context.Context, userKey string) (*CartView, error)
}

type cartQueriesImpl struct {
	records shared.CartRecords
}

func NewCartQueries(records shared.CartRecords) CartQueries {
	if records == nil {
		panic("cart queries constructed with nil record store")
	}
	return &cartQueriesImpl{records: records}
}

func (q *cartQueriesImpl) Get(ctx context.Context, userKey string) (*CartView, error) {
	c, err := q.records.Load(ctx, userKey)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		Items:         make([]CartItemView, 0, c.Len()),
		Total:         c.Total(),
		TotalQuantity: c.TotalQuantity(),
	}
	for _, l := range c.Lines() {
		view.Items = append(view.Items, CartItemView{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			ImageURL:  l.ImageURL,
			StockHint: l.StockHint,
		})
	}
	return view, nil
}
