package models

// Location is a normalized geocoding result, assembled from the vendor's
// address-component list by matching component-type tags.
type Location struct {
	StreetNumber     string  `json:"streetNumber,omitempty"`
	Route            string  `json:"route,omitempty"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	PostalCode       string  `json:"postalCode,omitempty"`
	Country          string  `json:"country,omitempty"`
	FormattedAddress string  `json:"formattedAddress"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// NavigationRoute is a single turn-by-turn route. Produced once per
// directions request and treated as immutable by callers.
type NavigationRoute struct {
	Summary      string      `json:"summary,omitempty"`
	Distance     string      `json:"distance"`
	Duration     string      `json:"duration"`
	EncodedPath  string      `json:"encodedPath"`
	Steps        []RouteStep `json:"steps"`
	Bounds       Bounds      `json:"bounds"`
	StartAddress string      `json:"startAddress,omitempty"`
	EndAddress   string      `json:"endAddress,omitempty"`
}

// RouteStep is one maneuver within a route.
type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	StartLoc    LatLng `json:"startLocation"`
	EndLoc      LatLng `json:"endLocation"`
	EncodedPath string `json:"encodedPath,omitempty"`
}

// DistanceResult is a distance/duration pair between two points.
type DistanceResult struct {
	DistanceText  string `json:"distanceText"`
	DistanceMeter int    `json:"distanceMeters"`
	DurationText  string `json:"durationText"`
	DurationSecs  int    `json:"durationSeconds"`
}

// PlaceSuggestion is an autocomplete prediction whose geometry resolved.
type PlaceSuggestion struct {
	Description string  `json:"description"`
	PlaceID     string  `json:"placeId"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Marker describes a map pin for the browser to render.
type Marker struct {
	Position  LatLng `json:"position"`
	Title     string `json:"title,omitempty"`
	IconURL   string `json:"iconUrl,omitempty"`
	StationID int    `json:"stationId,omitempty"`
}

// MapConfig is the initial map viewport handed to the browser. Zoom is
// clamped to [MinZoom, MaxZoom] wherever it is applied.
type MapConfig struct {
	Center  LatLng `json:"center"`
	Zoom    int    `json:"zoom"`
	MinZoom int    `json:"minZoom"`
	MaxZoom int    `json:"maxZoom"`
}
