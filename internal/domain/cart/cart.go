package cart

import "math"

// Line is one product's presence in the cart. Name, UnitPrice and ImageURL
// are denormalized at add time and never re-fetched. A nil StockHint means
// the available stock is unknown and quantities are treated as unbounded.
type Line struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
	StockHint *int
}

// Cart holds at most one Line per ProductID, in insertion order.
type Cart struct {
	lines []Line
}

// Reconstruct rebuilds a Cart from persisted lines.
func Reconstruct(lines []Line) Cart {
	c := Cart{lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		if c.indexOf(l.ProductID) >= 0 {
			continue
		}
		c.lines = append(c.lines, cloneLine(l))
	}
	return c
}

func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = cloneLine(l)
	}
	return out
}

func (c Cart) Find(productID string) (Line, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return cloneLine(c.lines[i]), true
	}
	return Line{}, false
}

func (c Cart) Len() int { return len(c.lines) }

func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Total sums UnitPrice * Quantity over all lines. Lines carrying a
// non-finite price or a negative quantity contribute 0, so the result is
// always finite; an empty cart totals exactly 0.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		if math.IsNaN(l.UnitPrice) || math.IsInf(l.UnitPrice, 0) {
			continue
		}
		if l.Quantity < 0 {
			continue
		}
		total += l.UnitPrice * float64(l.Quantity)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return total
}

// TotalQuantity is the sum of all line quantities.
func (c Cart) TotalQuantity() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) indexOf(productID string) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// cloneLine copies the line including its StockHint so callers never share
// the hint pointer with internal state.
func cloneLine(l Line) Line {
	if l.StockHint != nil {
		hint := *l.StockHint
		l.StockHint = &hint
	}
	return l
}
