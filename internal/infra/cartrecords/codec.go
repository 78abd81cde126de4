// Package cartrecords persists one cart record per user key. The record
// value is a JSON array of line snapshots that round-trips losslessly; a
// record that fails to decode is treated as "no saved cart".
package cartrecords

import (
	"encoding/json"

	"storefront-cart/internal/domain/cart"
)

type lineRecord struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
	StockHint *int    `json:"stock_hint,omitempty"`
}

func encode(c cart.Cart) ([]byte, error) {
	lines := c.Lines()
	records := make([]lineRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, lineRecord{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			ImageURL:  l.ImageURL,
			StockHint: l.StockHint,
		})
	}
	return json.Marshal(records)
}

func decode(data []byte) (cart.Cart, error) {
	var records []lineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return cart.Cart{}, err
	}
	lines := make([]cart.Line, 0, len(records))
	for _, r := range records {
		lines = append(lines, cart.Line{
			ProductID: r.ProductID,
			Name:      r.Name,
			UnitPrice: r.UnitPrice,
			Quantity:  r.Quantity,
			ImageURL:  r.ImageURL,
			StockHint: r.StockHint,
		})
	}
	return cart.Reconstruct(lines), nil
}
