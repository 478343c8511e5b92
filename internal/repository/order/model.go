package order

import "time"

type OrderDB struct {
	ID               string
	Status           string
	Amount           string
	BuyerID          string
	SellerID         string
	DeliveryDetails  []byte
	CreatedAt        time.Time
	ProductID        string
	ProductTitle     string
	ProductLocation  string
	ProductLatitude  *float64
	ProductLongitude *float64
}
