package entities

import "fmt"

type Stop struct {
	ID            string
	Kind          StopKind
	OrderID       string
	Address       string
	Latitude      float64
	Longitude     float64
	ContactName   string
	ProductTitle  string
	PreferredTime *string
}

type StopKind string

const (
	StopPickup   StopKind = "pickup"
	StopDelivery StopKind = "delivery"
)

func (k StopKind) String() string {
	return string(k)
}

// StopID composes the stable identifier of a stop from its kind and order.
func StopID(kind StopKind, orderID string) string {
	return fmt.Sprintf("%s-%s", kind, orderID)
}
