package order

import (
	"fmt"

	"github.com/shopspring/decimal"
	"routeplanner/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return nil, fmt.Errorf("order %s has malformed amount %q: %w", o.ID, o.Amount, err)
	}

	orderEntity := &entities.Order{
		ID:              o.ID,
		Status:          entities.OrderStatusType(o.Status),
		Amount:          amount,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		DeliveryDetails: entities.DeliveryDetailsRaw(o.DeliveryDetails),
		CreatedAt:       o.CreatedAt,
		Product: entities.Product{
			ID:       o.ProductID,
			SellerID: o.SellerID,
			Title:    o.ProductTitle,
			Location: o.ProductLocation,
		},
	}

	if o.ProductLatitude != nil {
		orderEntity.Product.Latitude = *o.ProductLatitude
	}
	if o.ProductLongitude != nil {
		orderEntity.Product.Longitude = *o.ProductLongitude
	}

	return orderEntity, nil
}
