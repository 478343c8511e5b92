package geo

import "math"

// EarthRadiusKm is Earth's mean radius in kilometers for the Haversine formula.
const EarthRadiusKm = 6371.0

type Point struct {
	Latitude  float64
	Longitude float64
}

// HaversineKm calculates the great-circle distance between two points on
// Earth in kilometers. Inputs are degrees; range validation is up to the
// caller.
func HaversineKm(a, b Point) float64 {
	const degToRad = math.Pi / 180

	dLat := (b.Latitude - a.Latitude) * degToRad
	dLng := (b.Longitude - a.Longitude) * degToRad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*degToRad)*math.Cos(b.Latitude*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
