package domain

// BusIDPrefix is the canonical prefix of every bus identifier (BUS-NNN).
const BusIDPrefix = "BUS-"

// Bus represents a vehicle in the fleet catalog. Identity fields are
// immutable; Position is the only mutable field and is owned by the
// map-animation simulator, never by the settlement core.
type Bus struct {
	BusID    string `json:"busID"`  // canonical BUS-NNN form
	Number   string `json:"number"` // display number painted on the vehicle
	RouteID  string `json:"routeID"`
	Position LatLng `json:"position"`
}
