package orders

import (
	"context"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresGateway is the order-submission sink. It records the submitted
// cart verbatim; downstream order processing is somebody else's problem.
type PostgresGateway struct {
	pool *pgxpool.Pool
}

func NewPostgresGateway(pool *pgxpool.Pool) *PostgresGateway {
	return &PostgresGateway{pool: pool}
}

func (g *PostgresGateway) Submit(ctx context.Context, order shared.OrderSubmission) (uuid.UUID, error) {
	orderID := uuid.New()

	err := pgx.BeginFunc(ctx, g.pool, func(tx pgx.Tx) error {
		const insertOrder = `
			INSERT INTO orders (id, user_key, total, submitted_at)
			VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insertOrder, orderID, order.UserKey, order.Total, order.SubmittedAt); err != nil {
			return err
		}

		const insertItem = `
			INSERT INTO order_items (order_id, product_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5)`
		for _, line := range order.Lines {
			if line.Quantity == 0 {
				continue
			}
			if _, err := tx.Exec(ctx, insertItem, orderID, line.ProductID, line.Name, line.UnitPrice, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to submit order", err)
	}
	return orderID, nil
}
