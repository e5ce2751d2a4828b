package models

// Position is a resolved geographic fix. Accuracy is in meters when the
// source reports one; zero means unknown.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
	Timestamp int64   `json:"timestamp,omitempty"`
}

// LatLng is a bare coordinate pair used by the maps adapter and route model.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is a bounding box expressed as its north-east and south-west corners.
type Bounds struct {
	NorthEast LatLng `json:"northeast"`
	SouthWest LatLng `json:"southwest"`
}
