package order

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"routeplanner/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListRoutable returns orders created inside [from, to] that still need
// delivery, joined with their product so the planner gets pickup coordinates
// in one round trip. Orders come back oldest first.
func (r *Repository) ListRoutable(ctx context.Context, from, to time.Time) ([]entities.Order, error) {
	builder := qb.
		Select(
			"o.id", "o.status", "o.amount", "o.buyer_id", "o.seller_id",
			"o.delivery_details", "o.created_at",
			"p.id", "p.title", "p.location", "p.latitude", "p.longitude",
		).
		From("orders o").
		Join("products p ON p.id = o.product_id").
		Where(sq.GtOrEq{"o.created_at": from}).
		Where(sq.LtOrEq{"o.created_at": to}).
		Where(sq.NotEq{"o.status": []string{
			entities.OrderDelivered.String(),
			entities.OrderCancelled.String(),
		}}).
		OrderBy("o.created_at ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list routable error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list routable error: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var orderModel OrderDB
		err = rows.Scan(
			&orderModel.ID,
			&orderModel.Status,
			&orderModel.Amount,
			&orderModel.BuyerID,
			&orderModel.SellerID,
			&orderModel.DeliveryDetails,
			&orderModel.CreatedAt,
			&orderModel.ProductID,
			&orderModel.ProductTitle,
			&orderModel.ProductLocation,
			&orderModel.ProductLatitude,
			&orderModel.ProductLongitude,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}

		orderEntity, err := ToDomain(&orderModel)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}
