package maps

import (
	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// Default viewport bounds served to the browser.
const (
	DefaultZoom = 12
	MinZoom     = 3
	MaxZoom     = 18
)

const stationIconURL = "/icons/charging-pin.svg"

// NewMapConfig builds the initial viewport for the given center, clamping
// zoom into the allowed range.
func NewMapConfig(center models.LatLng, zoom int) models.MapConfig {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	return models.MapConfig{
		Center:  center,
		Zoom:    zoom,
		MinZoom: MinZoom,
		MaxZoom: MaxZoom,
	}
}

// StationMarkers converts station records into marker descriptors for the
// browser to place on the map.
func StationMarkers(stations []models.ChargingStation) []models.Marker {
	markers := make([]models.Marker, len(stations))
	for i, station := range stations {
		markers[i] = models.Marker{
			Position: models.LatLng{
				Lat: station.AddressInfo.Latitude,
				Lng: station.AddressInfo.Longitude,
			},
			Title:     station.AddressInfo.Title,
			IconURL:   stationIconURL,
			StationID: station.ID,
		}
	}
	return markers
}
