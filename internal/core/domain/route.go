package domain

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route represents a fixed bus line in the fleet catalog.
// Routes are loaded once at startup and immutable for the process lifetime.
type Route struct {
	RouteID   string   `json:"routeID"`
	Name      string   `json:"name"`
	Color     string   `json:"color"` // display only
	Fare      int64    `json:"fare"`  // COP, no minor units
	Waypoints []LatLng `json:"waypoints"`
}
