// Package geo provides pure distance and path helpers shared by the
// directory client and the handlers.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMiles is the mean Earth radius in statute miles.
const EarthRadiusMiles = 3958.8

const feetPerMile = 5280

// CalculateDistance returns the great-circle distance in miles between two
// coordinate pairs using the haversine formula.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// FormatDistance renders a distance in miles for display: feet below one
// mile, one decimal below ten miles, whole miles above. Ties round away
// from zero, so 5.25 renders as "5.3 mi".
func FormatDistance(miles float64) string {
	if miles < 1 {
		return fmt.Sprintf("%.0f ft", math.Round(miles*feetPerMile))
	}
	if miles < 10 {
		return fmt.Sprintf("%.1f mi", math.Round(miles*10)/10)
	}
	return fmt.Sprintf("%.0f mi", math.Round(miles))
}

// IsWithinRadius reports whether the two points are within radiusMiles of
// each other. The boundary is inclusive.
func IsWithinRadius(lat1, lon1, lat2, lon2, radiusMiles float64) bool {
	return CalculateDistance(lat1, lon1, lat2, lon2) <= radiusMiles
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
