// Package geo contains pure geographic computation helpers.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres between two
// points. orb's own geo.Distance uses the WGS84 radius; quoting uses the
// mean earth radius of 6371 km, so the formula lives here.
func HaversineKm(from, to orb.Point) float64 {
	dLat := degreesToRadians(to.Lat() - from.Lat())
	dLng := degreesToRadians(to.Lon() - from.Lon())

	rLat1 := degreesToRadians(from.Lat())
	rLat2 := degreesToRadians(to.Lat())

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoadKm approximates road travel distance from a great-circle distance.
// Straight lines undershoot real highways; the factor is calibrated against
// common long-haul lanes.
func RoadKm(greatCircleKm, factor float64) float64 {
	return greatCircleKm * factor
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
