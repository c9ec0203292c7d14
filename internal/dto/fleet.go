package dto

import "github.com/buspago/buspago_backend/internal/core/domain"

// RouteResponse defines the data returned for a route.
type RouteResponse struct {
	RouteID   string          `json:"routeID"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Fare      int64           `json:"fare"`
	Waypoints []domain.LatLng `json:"waypoints"`
}

// BusResponse defines the data returned for a bus, including its
// current simulated position.
type BusResponse struct {
	BusID    string        `json:"busID"`
	Number   string        `json:"number"`
	RouteID  string        `json:"routeID"`
	Position domain.LatLng `json:"position"`
}

// ListRoutesResponse wraps the route list.
type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

// ListBusesResponse wraps the bus list.
type ListBusesResponse struct {
	Buses []BusResponse `json:"buses"`
}

// ToRouteResponse converts a domain.Route to its DTO.
func ToRouteResponse(route *domain.Route) RouteResponse {
	return RouteResponse{
		RouteID:   route.RouteID,
		Name:      route.Name,
		Color:     route.Color,
		Fare:      route.Fare,
		Waypoints: route.Waypoints,
	}
}

// ToBusResponse converts a domain.Bus to its DTO.
func ToBusResponse(bus *domain.Bus) BusResponse {
	return BusResponse{
		BusID:    bus.BusID,
		Number:   bus.Number,
		RouteID:  bus.RouteID,
		Position: bus.Position,
	}
}

// ToListRoutesResponse converts a route slice.
func ToListRoutesResponse(routes []domain.Route) ListRoutesResponse {
	res := make([]RouteResponse, len(routes))
	for i := range routes {
		res[i] = ToRouteResponse(&routes[i])
	}
	return ListRoutesResponse{Routes: res}
}

// ToListBusesResponse converts a bus slice.
func ToListBusesResponse(buses []domain.Bus) ListBusesResponse {
	res := make([]BusResponse, len(buses))
	for i := range buses {
		res[i] = ToBusResponse(&buses[i])
	}
	return ListBusesResponse{Buses: res}
}
