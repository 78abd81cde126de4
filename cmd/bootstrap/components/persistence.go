package components

import (
	"storefront-cart/internal/infra/cartrecords"
	"storefront-cart/internal/infra/notify"
	"storefront-cart/internal/infra/orders"
	"storefront-cart/internal/infra/readstore"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Cart records
		fx.Annotate(
			NewCartRecordStore,
			fx.As(new(shared.CartRecords)),
		),
		// Product reads serve both the catalog queries and the cart's
		// stock-snapshot source
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
			fx.As(new(shared.ProductReads)),
		),
		// Order sink
		fx.Annotate(
			orders.NewPostgresGateway,
			fx.As(new(shared.OrderGateway)),
		),
		// Notifications
		fx.Annotate(
			notify.NewSlogNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewCartRecordStore(rdb *redis.Client, cfg config.Config) *cartrecords.RedisStore {
	return cartrecords.NewRedisStore(rdb, cfg.Redis.CartTTL)
}
