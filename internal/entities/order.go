package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string
	Status          OrderStatusType
	Amount          decimal.Decimal
	BuyerID         string
	SellerID        string
	Product         Product
	DeliveryDetails DeliveryDetailsRaw
	CreatedAt       time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderProcessing     OrderStatusType = "processing"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
	OrderDisputed       OrderStatusType = "disputed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether the order left the delivery pipeline and must be
// excluded from routing.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// OrderStatusEvent is the order.status.changed payload consumed from the
// marketplace event stream.
type OrderStatusEvent struct {
	OrderID   string
	Status    OrderStatusType
	CreatedAt time.Time
}
