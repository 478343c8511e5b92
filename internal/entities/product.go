package entities

type Product struct {
	ID        string
	SellerID  string
	Title     string
	Location  string
	Latitude  float64
	Longitude float64
}
