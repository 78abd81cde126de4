//go:build unit

package cart_test

import (
	"testing"

	"storefront-cart/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionCase struct {
	name         string
	initial      []cart.Line
	cmd          cart.Command
	wantQuantity map[string]int
	wantAbsent   []string
	wantEvents   []cart.Event
}

func runTransitions(t *testing.T, cases []transitionCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, events := cart.Apply(cart.Reconstruct(tc.initial), tc.cmd)

			for id, qty := range tc.wantQuantity {
				line, ok := next.Find(id)
				require.True(t, ok, "expected line %s", id)
				assert.Equal(t, qty, line.Quantity, "quantity of %s", id)
			}
			for _, id := range tc.wantAbsent {
				_, ok := next.Find(id)
				assert.False(t, ok, "expected no line %s", id)
			}
			assert.Equal(t, tc.wantEvents, events)
		})
	}
}

func TestApply_AddItem(t *testing.T) {
	t.Run("new line", func(t *testing.T) {
		runTransitions(t, []transitionCase{
			{
				name:         "plain add without stock hint",
				cmd:          cart.AddItem{ProductID: "A", Name: "Mug", UnitPrice: 10, Quantity: 2},
				wantQuantity: map[string]int{"A": 2},
				wantEvents:   []cart.Event{cart.ItemAdded{ProductID: "A", Name: "Mug", Quantity: 2}},
			},
			{
				name:         "zero quantity floors to one when stock unknown",
				cmd:          cart.AddItem{ProductID: "A", Quantity: 0},
				wantQuantity: map[string]int{"A": 1},
				wantEvents:   []cart.Event{cart.ItemAdded{ProductID: "A", Quantity: 1}},
			},
			{
				name:         "request above stock is capped",
				cmd:          cart.AddItem{ProductID: "A", Quantity: 7, StockHint: hint(5)},
				wantQuantity: map[string]int{"A": 5},
				wantEvents: []cart.Event{
					cart.StockLimited{ProductID: "A", Ceiling: 5},
					cart.ItemAdded{ProductID: "A", Quantity: 5},
				},
			},
			{
				name:         "sold out product lands at zero",
				cmd:          cart.AddItem{ProductID: "A", Quantity: 1, StockHint: hint(0)},
				wantQuantity: map[string]int{"A": 0},
				wantEvents: []cart.Event{
					cart.StockLimited{ProductID: "A", Ceiling: 0},
					cart.ItemAdded{ProductID: "A", Quantity: 0},
				},
			},
		})
	})

	t.Run("existing line", func(t *testing.T) {
		runTransitions(t, []transitionCase{
			{
				name:         "quantities accumulate",
				initial:      []cart.Line{{ProductID: "A", Name: "Mug", Quantity: 2}},
				cmd:          cart.AddItem{ProductID: "A", Quantity: 3},
				wantQuantity: map[string]int{"A": 5},
				wantEvents:   []cart.Event{cart.ItemAdded{ProductID: "A", Name: "Mug", Quantity: 5}},
			},
			{
				name:         "sum clamped by stored hint",
				initial:      []cart.Line{{ProductID: "A", Name: "Mug", Quantity: 3, StockHint: hint(5)}},
				cmd:          cart.AddItem{ProductID: "A", Quantity: 4},
				wantQuantity: map[string]int{"A": 5},
				wantEvents: []cart.Event{
					cart.StockLimited{ProductID: "A", Ceiling: 5},
					cart.ItemAdded{ProductID: "A", Name: "Mug", Quantity: 5},
				},
			},
			{
				name:         "incoming hint overrides stored hint",
				initial:      []cart.Line{{ProductID: "A", Quantity: 3, StockHint: hint(10)}},
				cmd:          cart.AddItem{ProductID: "A", Quantity: 4, StockHint: hint(4)},
				wantQuantity: map[string]int{"A": 4},
				wantEvents: []cart.Event{
					cart.StockLimited{ProductID: "A", Ceiling: 4},
					cart.ItemAdded{ProductID: "A", Quantity: 4},
				},
			},
			{
				name:         "stock depleted to zero empties the line",
				initial:      []cart.Line{{ProductID: "A", Quantity: 3, StockHint: hint(5)}},
				cmd:          cart.AddItem{ProductID: "A", Quantity: 1, StockHint: hint(0)},
				wantQuantity: map[string]int{"A": 0},
				wantEvents: []cart.Event{
					cart.StockLimited{ProductID: "A", Ceiling: 0},
					cart.ItemAdded{ProductID: "A", Quantity: 0},
				},
			},
		})
	})

	t.Run("repeated adds never exceed the latest finite hint", func(t *testing.T) {
		c := cart.Cart{}
		var events []cart.Event
		for i := 0; i < 10; i++ {
			c, events = cart.Apply(c, cart.AddItem{ProductID: "A", Quantity: 3, StockHint: hint(7)})
		}
		line, ok := c.Find("A")
		require.True(t, ok)
		assert.Equal(t, 7, line.Quantity)
		assert.Contains(t, events, cart.StockLimited{ProductID: "A", Ceiling: 7})
	})

	t.Run("updates preserve insertion order", func(t *testing.T) {
		c := cart.Reconstruct([]cart.Line{
			{ProductID: "A", Quantity: 1},
			{ProductID: "B", Quantity: 1},
		})
		c, _ = cart.Apply(c, cart.AddItem{ProductID: "A", Quantity: 1})

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "A", lines[0].ProductID)
		assert.Equal(t, "B", lines[1].ProductID)
	})
}

func TestApply_RemoveItem(t *testing.T) {
	runTransitions(t, []transitionCase{
		{
			name:       "removes the line",
			initial:    []cart.Line{{ProductID: "A", Quantity: 2}, {ProductID: "B", Quantity: 1}},
			cmd:        cart.RemoveItem{ProductID: "A"},
			wantAbsent: []string{"A"},
			wantQuantity: map[string]int{
				"B": 1,
			},
			wantEvents: []cart.Event{cart.ItemRemoved{ProductID: "A"}},
		},
		{
			name:       "confirmation fires even for an absent line",
			cmd:        cart.RemoveItem{ProductID: "ghost"},
			wantAbsent: []string{"ghost"},
			wantEvents: []cart.Event{cart.ItemRemoved{ProductID: "ghost"}},
		},
	})

	t.Run("re-add after remove starts from a fresh line", func(t *testing.T) {
		c := cart.Reconstruct([]cart.Line{{ProductID: "A", Quantity: 2, StockHint: hint(2)}})
		c, _ = cart.Apply(c, cart.RemoveItem{ProductID: "A"})
		c, _ = cart.Apply(c, cart.AddItem{ProductID: "A", Quantity: 9})

		line, ok := c.Find("A")
		require.True(t, ok)
		assert.Equal(t, 9, line.Quantity)
		assert.Nil(t, line.StockHint)
	})
}

func TestApply_UpdateQuantity(t *testing.T) {
	runTransitions(t, []transitionCase{
		{
			name:       "absent line is a no-op",
			cmd:        cart.UpdateQuantity{ProductID: "A", Quantity: 3},
			wantAbsent: []string{"A"},
			wantEvents: nil,
		},
		{
			name:         "direct replace within stock",
			initial:      []cart.Line{{ProductID: "A", Quantity: 1, StockHint: hint(5)}},
			cmd:          cart.UpdateQuantity{ProductID: "A", Quantity: 4},
			wantQuantity: map[string]int{"A": 4},
			wantEvents:   nil,
		},
		{
			name:         "replace above stock is capped",
			initial:      []cart.Line{{ProductID: "A", Quantity: 1, StockHint: hint(5)}},
			cmd:          cart.UpdateQuantity{ProductID: "A", Quantity: 9},
			wantQuantity: map[string]int{"A": 5},
			wantEvents:   []cart.Event{cart.StockLimited{ProductID: "A", Ceiling: 5}},
		},
		{
			name:         "zero request with positive stock floors to one",
			initial:      []cart.Line{{ProductID: "A", Quantity: 3, StockHint: hint(5)}},
			cmd:          cart.UpdateQuantity{ProductID: "A", Quantity: 0},
			wantQuantity: map[string]int{"A": 1},
			wantEvents:   nil,
		},
		{
			name:         "non-positive request with unknown stock floors to one",
			initial:      []cart.Line{{ProductID: "A", Quantity: 3}},
			cmd:          cart.UpdateQuantity{ProductID: "A", Quantity: -2},
			wantQuantity: map[string]int{"A": 1},
			wantEvents:   nil,
		},
		{
			name:         "zero stock forces zero regardless of request",
			initial:      []cart.Line{{ProductID: "A", Quantity: 2, StockHint: hint(0)}},
			cmd:          cart.UpdateQuantity{ProductID: "A", Quantity: 5},
			wantQuantity: map[string]int{"A": 0},
			wantEvents:   []cart.Event{cart.StockLimited{ProductID: "A", Ceiling: 0}},
		},
		{
			name:         "explicit zero request with zero stock stays silent",
			initial:      []cart.Line{{ProductID: "A", Quantity: 2, StockHint: hint(0)}},
			cmd:          cart.UpdateQuantity{ProductID: "A", Quantity: 0},
			wantQuantity: map[string]int{"A": 0},
			wantEvents:   nil,
		},
	})
}

func TestApply_Clear(t *testing.T) {
	c := cart.Reconstruct([]cart.Line{
		{ProductID: "A", Quantity: 2},
		{ProductID: "B", Quantity: 1},
	})

	next, events := cart.Apply(c, cart.Clear{})

	assert.True(t, next.IsEmpty())
	assert.Empty(t, events)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	original := cart.Reconstruct([]cart.Line{{ProductID: "A", Quantity: 2, StockHint: hint(5)}})

	_, _ = cart.Apply(original, cart.AddItem{ProductID: "A", Quantity: 9})
	_, _ = cart.Apply(original, cart.UpdateQuantity{ProductID: "A", Quantity: 1})
	_, _ = cart.Apply(original, cart.RemoveItem{ProductID: "A"})

	line, ok := original.Find("A")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	require.NotNil(t, line.StockHint)
	assert.Equal(t, 5, *line.StockHint)
}
