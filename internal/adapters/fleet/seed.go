package fleet

import "github.com/buspago/buspago_backend/internal/core/domain"

// DefaultCatalog returns the demo fleet for Tunja, Boyacá: three urban
// routes and five buses with their starting positions.
func DefaultCatalog() *Catalog {
	routes := []domain.Route{
		{
			RouteID: "ruta-1",
			Name:    "Ruta 1 - Centro",
			Color:   "#000000",
			Fare:    2500,
			Waypoints: []domain.LatLng{
				{Lat: 5.5350, Lng: -73.3678},
				{Lat: 5.5380, Lng: -73.3670},
				{Lat: 5.5401, Lng: -73.3678},
				{Lat: 5.5420, Lng: -73.3650},
				{Lat: 5.5450, Lng: -73.3640},
				{Lat: 5.5470, Lng: -73.3620},
			},
		},
		{
			RouteID: "ruta-2",
			Name:    "Ruta 2 - Norte",
			Color:   "#666666",
			Fare:    2500,
			Waypoints: []domain.LatLng{
				{Lat: 5.5350, Lng: -73.3678},
				{Lat: 5.5370, Lng: -73.3690},
				{Lat: 5.5401, Lng: -73.3678},
				{Lat: 5.5430, Lng: -73.3710},
				{Lat: 5.5460, Lng: -73.3740},
				{Lat: 5.5490, Lng: -73.3770},
			},
		},
		{
			RouteID: "ruta-3",
			Name:    "Ruta 3 - Sur",
			Color:   "#333333",
			Fare:    2500,
			Waypoints: []domain.LatLng{
				{Lat: 5.5480, Lng: -73.3620},
				{Lat: 5.5450, Lng: -73.3640},
				{Lat: 5.5401, Lng: -73.3678},
				{Lat: 5.5370, Lng: -73.3660},
				{Lat: 5.5340, Lng: -73.3630},
				{Lat: 5.5310, Lng: -73.3600},
			},
		},
	}

	buses := []domain.Bus{
		{BusID: "BUS-001", Number: "101", RouteID: "ruta-1", Position: domain.LatLng{Lat: 5.5380, Lng: -73.3670}},
		{BusID: "BUS-002", Number: "205", RouteID: "ruta-2", Position: domain.LatLng{Lat: 5.5430, Lng: -73.3710}},
		{BusID: "BUS-003", Number: "308", RouteID: "ruta-3", Position: domain.LatLng{Lat: 5.5370, Lng: -73.3660}},
		{BusID: "BUS-004", Number: "102", RouteID: "ruta-1", Position: domain.LatLng{Lat: 5.5450, Lng: -73.3640}},
		{BusID: "BUS-005", Number: "206", RouteID: "ruta-2", Position: domain.LatLng{Lat: 5.5460, Lng: -73.3740}},
	}

	return NewCatalog(routes, buses)
}
