package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance in kilometers.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
