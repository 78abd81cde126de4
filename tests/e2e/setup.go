//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront-cart/cmd/bootstrap"
	"storefront-cart/cmd/bootstrap/components"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/notify"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// CatalogStub stands in for the Postgres-backed product read store so the
// e2e suite only needs the Redis container. Stock is mutable to simulate
// catalog changes between cart operations.
type CatalogStub struct {
	mu       sync.Mutex
	products map[uuid.UUID]shared.ProductSnapshot
}

func newCatalogStub() *CatalogStub {
	return &CatalogStub{products: make(map[uuid.UUID]shared.ProductSnapshot)}
}

func (s *CatalogStub) Seed(p shared.ProductSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *CatalogStub) SetStock(id uuid.UUID, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return
	}
	p.Stock = stock
	s.products[id] = p
}

func (s *CatalogStub) Snapshot(_ context.Context, productID uuid.UUID) (*shared.ProductSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", errs.New(productID.String()), infra.KindNotFound)
	}
	return &p, nil
}

func (s *CatalogStub) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	snap, err := s.Snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.ProductView{
		ID:        snap.ID,
		Name:      snap.Name,
		UnitPrice: snap.UnitPrice,
		ImageURL:  snap.ImageURL,
		Stock:     snap.Stock,
	}, nil
}

func (s *CatalogStub) List(_ context.Context, _ queries.ProductFilters, limit, _ int) ([]*queries.ProductListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]*queries.ProductListItem, 0, len(s.products))
	for _, p := range s.products {
		if len(items) == limit {
			break
		}
		items = append(items, &queries.ProductListItem{
			ID:        p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			ImageURL:  p.ImageURL,
			Stock:     p.Stock,
		})
	}
	return items, nil
}

// OrderSinkStub records submissions instead of writing to Postgres.
type OrderSinkStub struct {
	mu          sync.Mutex
	submissions []shared.OrderSubmission
}

func (s *OrderSinkStub) Submit(_ context.Context, order shared.OrderSubmission) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, order)
	return uuid.New(), nil
}

func (s *OrderSinkStub) Submissions() []shared.OrderSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.OrderSubmission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

// SharedSuite boots the application once per suite against the shared
// Redis container and exposes the seams the flow tests drive.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Catalog *CatalogStub
	Orders  *OrderSinkStub
}

func (s *SharedSuite) SetupSuite() {
	s.Router, s.Catalog, s.Orders = setupE2EEnvironment(s.T())
}

// appOptions is the full fx composition the e2e tier runs: the production
// modules with the Postgres-backed edges replaced by the stubs.
func appOptions(redisAddr string, catalog *CatalogStub, orderSink *OrderSinkStub) fx.Option {
	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			cfg := config.NewTestConfig()
			cfg.Redis.Addr = redisAddr
			return cfg
		}),
	)

	testStubsModule := fx.Module("teststubs",
		fx.Provide(
			fx.Annotate(
				func() *CatalogStub { return catalog },
				fx.As(new(shared.ProductReads)),
				fx.As(new(queries.ProductReadStore)),
			),
			fx.Annotate(
				func() *OrderSinkStub { return orderSink },
				fx.As(new(shared.OrderGateway)),
			),
			fx.Annotate(
				components.NewCartRecordStore,
				fx.As(new(shared.CartRecords)),
			),
			fx.Annotate(
				notify.NewSlogNotifier,
				fx.As(new(shared.Notifier)),
			),
		),
	)

	return fx.Options(
		testConfigModule,
		testStubsModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Provide(func() *slog.Logger { return slog.Default() }),
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func setupE2EEnvironment(t *testing.T) (*gin.Engine, *CatalogStub, *OrderSinkStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	redisInfo := startRedisContainer(t)

	catalog := newCatalogStub()
	orderSink := &OrderSinkStub{}

	var router *gin.Engine

	app := fx.New(
		appOptions(fmt.Sprintf("%s:%s", redisInfo.Host, redisInfo.Port.Port()), catalog, orderSink),
		fx.Populate(&router),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "failed to start fx app")
	require.NotNil(t, router)

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})

	return router, catalog, orderSink
}

func startRedisContainer(t *testing.T) ContainerInfo {
	t.Helper()

	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to start redis container: %v", err))
		}
		redisTestContainer = container
	})

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve redis container address")
	return info
}

func getContainerHostPort(container testcontainers.Container, port nat.Port) (ContainerInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host, err := container.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mapped}, nil
}
