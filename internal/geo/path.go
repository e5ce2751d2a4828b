package geo

import (
	"fmt"
	"math"

	"github.com/twpayne/go-polyline"

	"github.com/chargescout/chargescout/backend-go/internal/models"
)

const earthRadiusMeters = 6378137

// DecodePath decodes an encoded polyline into coordinate pairs.
func DecodePath(encoded string) ([]models.LatLng, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding polyline: %w", err)
	}

	points := make([]models.LatLng, len(coords))
	for i, c := range coords {
		points[i] = models.LatLng{Lat: c[0], Lng: c[1]}
	}
	return points, nil
}

// EncodePath encodes coordinate pairs into a polyline string.
func EncodePath(points []models.LatLng) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lng}
	}
	return string(polyline.EncodeCoords(coords))
}

// IsOnPath reports whether point lies within toleranceMeters of the route
// described by the encoded polyline. Used for off-route detection while
// navigating to a station.
func IsOnPath(point models.LatLng, encodedPath string, toleranceMeters float64) (bool, error) {
	path, err := DecodePath(encodedPath)
	if err != nil {
		return false, err
	}
	if len(path) == 0 {
		return false, nil
	}
	if len(path) == 1 {
		meters := CalculateDistance(point.Lat, point.Lng, path[0].Lat, path[0].Lng) * 1609.344
		return meters <= toleranceMeters, nil
	}

	for i := 0; i < len(path)-1; i++ {
		if distanceToSegment(point, path[i], path[i+1]) <= toleranceMeters {
			return true, nil
		}
	}
	return false, nil
}

// distanceToSegment returns the minimum distance in meters from point P to
// the segment [A, B], using a local equirectangular projection around the
// segment's mean latitude. Accuracy is sufficient at street scale.
func distanceToSegment(p, a, b models.LatLng) float64 {
	degToRad := math.Pi / 180

	lat1 := a.Lat * degToRad
	lon1 := a.Lng * degToRad
	lat2 := b.Lat * degToRad
	lon2 := b.Lng * degToRad
	latP := p.Lat * degToRad
	lonP := p.Lng * degToRad

	latRef := (lat1 + lat2) / 2
	cosLatRef := math.Cos(latRef)

	xA, yA := lon1*earthRadiusMeters*cosLatRef, lat1*earthRadiusMeters
	xB, yB := lon2*earthRadiusMeters*cosLatRef, lat2*earthRadiusMeters
	xP, yP := lonP*earthRadiusMeters*cosLatRef, latP*earthRadiusMeters

	dx, dy := xB-xA, yB-yA

	// Degenerate segment (A == B)
	if dx == 0 && dy == 0 {
		return math.Hypot(xP-xA, yP-yA)
	}

	t := ((xP-xA)*dx + (yP-yA)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	xProj := xA + t*dx
	yProj := yA + t*dy

	return math.Hypot(xP-xProj, yP-yProj)
}
