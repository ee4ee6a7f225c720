package pricing

import "math"

const earthRadiusKm = 6371.0

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether both components are finite numbers.
func (c Coordinate) Valid() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0)
}

// Distance returns the haversine great-circle distance between two points
// in kilometers, rounded to 2 decimal places. Non-finite input yields 0
// rather than an error: a broken coordinate must never break checkout.
func Distance(origin, dest Coordinate) float64 {
	if !origin.Valid() || !dest.Valid() {
		return 0
	}

	lat1 := origin.Lat * math.Pi / 180
	lat2 := dest.Lat * math.Pi / 180
	dLat := (dest.Lat - origin.Lat) * math.Pi / 180
	dLng := (dest.Lng - origin.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}
