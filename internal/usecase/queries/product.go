package queries

import (
	"context"
	"time"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

const (
	DefaultProductLimit = 20
	MaxProductLimit     = 100
)

type ProductView struct {
	ID          uuid.UUID
	Name        string
	Description string
	UnitPrice   float64
	ImageURL    string
	Stock       int
	CategoryID  *uuid.UUID
	CreatedAt   time.Time
}

type ProductListItem struct {
	ID        uuid.UUID
	Name      string
	UnitPrice float64
	ImageURL  string
	Stock     int
}

type ProductFilters struct {
	CategoryID *uuid.UUID
	InStock    bool
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, filters ProductFilters, limit, offset int) ([]*ProductListItem, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, filters ProductFilters, limit, offset int) ([]*ProductListItem, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{readStore: readStore}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *productQueriesImpl) List(ctx context.Context, filters ProductFilters, limit, offset int) ([]*ProductListItem, error) {
	return q.readStore.List(ctx, filters, ValidateLimit(limit), max(offset, 0))
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultProductLimit
	}
	if limit > MaxProductLimit {
		return MaxProductLimit
	}
	return limit
}
