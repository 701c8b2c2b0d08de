package query

import "math"

// Spherical-earth model: fixed mean radius, no ellipsoidal correction.
const (
	earthRadiusKm = 6371.0
	milesPerKm    = 0.621371
)

// Kilometers returns the great-circle distance between two points using the
// haversine formula in its two-argument arctangent form, which stays
// numerically stable for near-zero distances, near the poles, and across
// the ±180° longitude seam.
func Kilometers(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Miles converts an unrounded kilometer distance.
func Miles(km float64) float64 {
	return km * milesPerKm
}

// Round2 rounds to two decimal places. Applied only when shaping the
// response; sorting always uses full-precision kilometers.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
