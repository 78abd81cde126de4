package cart

// Command is a cart mutation consumed by Apply. The variants are sealed so
// the transition switch stays exhaustive.
type Command interface{ isCommand() }

// AddItem increments the quantity of ProductID by Quantity, creating the
// line if absent. StockHint, when non-nil, is the freshest known stock for
// the product and becomes the line's new ceiling.
type AddItem struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
	StockHint *int
}

// RemoveItem drops the line for ProductID entirely.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity replaces the quantity of ProductID with Quantity,
// clamped against the line's stored stock hint.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear empties the cart.
type Clear struct{}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}

// Event is a user-facing outcome of a transition. Events are collected by
// the caller and turned into notifications; the reducer itself performs
// no I/O.
type Event interface{ isEvent() }

// ItemAdded confirms an AddItem, clamped or not.
type ItemAdded struct {
	ProductID string
	Name      string
	Quantity  int
}

// ItemRemoved confirms a RemoveItem. It fires even when the line was
// already absent; the confirmation is about the user's intent, not the
// prior state.
type ItemRemoved struct {
	ProductID string
}

// StockLimited reports that a requested quantity was reduced to Ceiling.
// Ceiling 0 means the product is out of stock.
type StockLimited struct {
	ProductID string
	Ceiling   int
}

func (ItemAdded) isEvent()    {}
func (ItemRemoved) isEvent()  {}
func (StockLimited) isEvent() {}

// Apply is the single pure transition function over cart state. It never
// fails: quantities that violate a stock ceiling are clamped and reported
// through a StockLimited event rather than rejected.
func Apply(c Cart, cmd Command) (Cart, []Event) {
	switch v := cmd.(type) {
	case AddItem:
		return applyAdd(c, v)
	case RemoveItem:
		return applyRemove(c, v)
	case UpdateQuantity:
		return applyUpdate(c, v)
	case Clear:
		return Cart{}, nil
	default:
		return c, nil
	}
}

func applyAdd(c Cart, cmd AddItem) (Cart, []Event) {
	next := Cart{lines: make([]Line, len(c.lines))}
	copy(next.lines, c.lines)

	var events []Event
	i := next.indexOf(cmd.ProductID)

	if i < 0 {
		qty := cmd.Quantity
		if cmd.StockHint != nil {
			if qty > *cmd.StockHint {
				events = append(events, StockLimited{ProductID: cmd.ProductID, Ceiling: *cmd.StockHint})
				qty = *cmd.StockHint
			}
			if qty < 0 {
				qty = 0
			}
		} else if qty < 1 {
			qty = 1
		}
		next.lines = append(next.lines, cloneLine(Line{
			ProductID: cmd.ProductID,
			Name:      cmd.Name,
			UnitPrice: cmd.UnitPrice,
			Quantity:  qty,
			ImageURL:  cmd.ImageURL,
			StockHint: cmd.StockHint,
		}))
		events = append(events, ItemAdded{ProductID: cmd.ProductID, Name: cmd.Name, Quantity: qty})
		return next, events
	}

	line := next.lines[i]
	sum := line.Quantity + cmd.Quantity

	// The incoming hint is fresher than whatever was stored at add time.
	hint := line.StockHint
	if cmd.StockHint != nil {
		hint = cmd.StockHint
	}

	if hint != nil {
		if sum > *hint {
			events = append(events, StockLimited{ProductID: cmd.ProductID, Ceiling: *hint})
			sum = *hint
		}
		if sum < 0 {
			sum = 0
		}
	} else if sum < 1 {
		sum = 1
	}

	line.Quantity = sum
	if cmd.StockHint != nil {
		line.StockHint = cmd.StockHint
	}
	next.lines[i] = cloneLine(line)
	events = append(events, ItemAdded{ProductID: cmd.ProductID, Name: line.Name, Quantity: sum})
	return next, events
}

func applyRemove(c Cart, cmd RemoveItem) (Cart, []Event) {
	next := Cart{lines: make([]Line, 0, len(c.lines))}
	for _, l := range c.lines {
		if l.ProductID == cmd.ProductID {
			continue
		}
		next.lines = append(next.lines, l)
	}
	// Removal is confirmed even when nothing matched.
	return next, []Event{ItemRemoved{ProductID: cmd.ProductID}}
}

func applyUpdate(c Cart, cmd UpdateQuantity) (Cart, []Event) {
	i := c.indexOf(cmd.ProductID)
	if i < 0 {
		return c, nil
	}

	next := Cart{lines: make([]Line, len(c.lines))}
	copy(next.lines, c.lines)
	line := next.lines[i]

	var events []Event
	qty := cmd.Quantity
	switch {
	case line.StockHint != nil && *line.StockHint == 0:
		// Sold out: zero is the only admissible quantity.
		if qty > 0 {
			events = append(events, StockLimited{ProductID: cmd.ProductID, Ceiling: 0})
		}
		qty = 0
	case line.StockHint != nil && qty > *line.StockHint:
		events = append(events, StockLimited{ProductID: cmd.ProductID, Ceiling: *line.StockHint})
		qty = *line.StockHint
	}
	if qty < 1 && !(line.StockHint != nil && *line.StockHint == 0) {
		qty = 1
	}

	line.Quantity = qty
	next.lines[i] = cloneLine(line)
	return next, events
}
