package route

import "time"

type RouteDB struct {
	ID            string
	RouteDate     time.Time
	TimeSlot      string
	PickupRoute   []byte
	DeliveryRoute []byte
	Status        string
	CreatedAt     time.Time
}

// StopDB is the JSONB shape of a single stop inside a stored route.
type StopDB struct {
	ID            string  `json:"id"`
	Kind          string  `json:"type"`
	OrderID       string  `json:"orderId"`
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ContactName   string  `json:"contactName"`
	ProductTitle  string  `json:"productTitle"`
	PreferredTime *string `json:"preferredTime,omitempty"`
}
