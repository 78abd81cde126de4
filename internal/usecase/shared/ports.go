package shared

import (
	"context"
	"time"

	"storefront-cart/internal/domain/cart"

	"github.com/google/uuid"
)

// CartRecords persists one cart record per user key. Load must fail open:
// a missing or unreadable record yields an empty cart, never an error the
// caller has to branch on.
type CartRecords interface {
	Load(ctx context.Context, userKey string) (cart.Cart, error)
	Save(ctx context.Context, userKey string, c cart.Cart) error
	Delete(ctx context.Context, userKey string) error
}

// Notifier delivers fire-and-forget user-facing messages. No return value
// is consumed; delivery failures must not gate the mutation that emitted
// them.
type Notifier interface {
	Info(ctx context.Context, userKey, message string)
	Success(ctx context.Context, userKey, message string)
}

// ProductSnapshot is the catalog state of one product at add-to-cart time.
// Stock is the freshest known availability and becomes the cart line's
// stock hint.
type ProductSnapshot struct {
	ID        uuid.UUID
	Name      string
	UnitPrice float64
	ImageURL  string
	Stock     int
}

// ProductReads is the stock-quantity source consumed by cart mutations.
type ProductReads interface {
	Snapshot(ctx context.Context, productID uuid.UUID) (*ProductSnapshot, error)
}

// OrderSubmission is what checkout hands to the order sink.
type OrderSubmission struct {
	UserKey     string
	Lines       []cart.Line
	Total       float64
	SubmittedAt time.Time
}

// OrderGateway is the order-submission sink. The cart core owns no
// server-side order processing beyond handing the submission over.
type OrderGateway interface {
	Submit(ctx context.Context, order OrderSubmission) (uuid.UUID, error)
}
