package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrEmptyCheckout   = errs.New("cannot check out an empty cart")
	ErrOrderSubmission = errs.New("order submission failed")
)

type CheckoutResult struct {
	OrderID uuid.UUID
	Total   float64
}

type CartCommands interface {
	AddItem(ctx context.Context, userKey string, productID uuid.UUID, quantity int) error
	UpdateQuantity(ctx context.Context, userKey string, productID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userKey string, productID uuid.UUID) error
	Clear(ctx context.Context, userKey string) error
	Checkout(ctx context.Context, userKey string) (*CheckoutResult, error)
}

type cartUseCaseImpl struct {
	records  shared.CartRecords
	products shared.ProductReads
	orders   shared.OrderGateway
	notifier shared.Notifier
	clock    clock.Clock
}

// NewCartCommands wires the cart use case. Nil collaborators are a wiring
// bug, not a runtime condition, so they fail fast.
func NewCartCommands(
	records shared.CartRecords,
	products shared.ProductReads,
	orders shared.OrderGateway,
	notifier shared.Notifier,
	clk clock.Clock,
) CartCommands {
	if records == nil || products == nil || orders == nil || notifier == nil || clk == nil {
		panic("cart commands constructed with nil collaborator")
	}
	return &cartUseCaseImpl{
		records:  records,
		products: products,
		orders:   orders,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *cartUseCaseImpl) AddItem(ctx context.Context, userKey string, productID uuid.UUID, quantity int) error {
	snap, err := uc.products.Snapshot(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return err
	}

	current, err := uc.records.Load(ctx, userKey)
	if err != nil {
		return err
	}

	stock := snap.Stock
	next, events := cart.Apply(current, cart.AddItem{
		ProductID: snap.ID.String(),
		Name:      snap.Name,
		UnitPrice: snap.UnitPrice,
		Quantity:  quantity,
		ImageURL:  snap.ImageURL,
		StockHint: &stock,
	})

	uc.persist(ctx, userKey, next)
	uc.dispatch(ctx, userKey, events)
	return nil
}

func (uc *cartUseCaseImpl) UpdateQuantity(ctx context.Context, userKey string, productID uuid.UUID, quantity int) error {
	current, err := uc.records.Load(ctx, userKey)
	if err != nil {
		return err
	}

	next, events := cart.Apply(current, cart.UpdateQuantity{
		ProductID: productID.String(),
		Quantity:  quantity,
	})

	uc.persist(ctx, userKey, next)
	uc.dispatch(ctx, userKey, events)
	return nil
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, userKey string, productID uuid.UUID) error {
	current, err := uc.records.Load(ctx, userKey)
	if err != nil {
		return err
	}

	next, events := cart.Apply(current, cart.RemoveItem{ProductID: productID.String()})

	uc.persist(ctx, userKey, next)
	uc.dispatch(ctx, userKey, events)
	return nil
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, userKey string) error {
	next, events := cart.Apply(cart.Cart{}, cart.Clear{})

	uc.persist(ctx, userKey, next)
	uc.dispatch(ctx, userKey, events)
	return nil
}

func (uc *cartUseCaseImpl) Checkout(ctx context.Context, userKey string) (*CheckoutResult, error) {
	current, err := uc.records.Load(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, ErrEmptyCheckout
	}

	orderID, err := uc.orders.Submit(ctx, shared.OrderSubmission{
		UserKey:     userKey,
		Lines:       current.Lines(),
		Total:       current.Total(),
		SubmittedAt: uc.clock.Now(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrOrderSubmission)
	}

	result := &CheckoutResult{OrderID: orderID, Total: current.Total()}

	next, _ := cart.Apply(current, cart.Clear{})
	uc.persist(ctx, userKey, next)
	return result, nil
}

// persist writes through after every transition: non-empty carts are saved,
// empty carts have their record deleted. Storage trouble is logged and
// swallowed so an effect never gates the mutation that already happened.
func (uc *cartUseCaseImpl) persist(ctx context.Context, userKey string, c cart.Cart) {
	var err error
	if c.IsEmpty() {
		err = uc.records.Delete(ctx, userKey)
	} else {
		err = uc.records.Save(ctx, userKey, c)
	}
	if err != nil {
		slog.Warn("cart persistence failed", "user_key", userKey, "error", err.Error())
	}
}

func (uc *cartUseCaseImpl) dispatch(ctx context.Context, userKey string, events []cart.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case cart.ItemAdded:
			name := e.Name
			if name == "" {
				name = "Item"
			}
			uc.notifier.Success(ctx, userKey, name+" added to your cart")
		case cart.ItemRemoved:
			uc.notifier.Success(ctx, userKey, "Item removed from your cart")
		case cart.StockLimited:
			if e.Ceiling == 0 {
				uc.notifier.Info(ctx, userKey, "This product is out of stock")
			} else {
				uc.notifier.Info(ctx, userKey, fmt.Sprintf("Only %d in stock, quantity adjusted", e.Ceiling))
			}
		}
	}
}
