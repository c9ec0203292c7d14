package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buspago/buspago_backend/internal/apperrors"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/dto"
	"github.com/buspago/buspago_backend/internal/middleware"
)

// fleetHandler handles HTTP requests for the route and bus catalog.
type fleetHandler struct {
	fleetService portssvc.FleetSvcFacade
}

func newFleetHandler(fs portssvc.FleetSvcFacade) *fleetHandler {
	return &fleetHandler{fleetService: fs}
}

// registerFleetRoutes registers routes related to the fleet catalog.
func registerFleetRoutes(rg *gin.RouterGroup, fleetService portssvc.FleetSvcFacade) {
	h := newFleetHandler(fleetService)

	fleet := rg.Group("/fleet")
	{
		fleet.GET("/routes", h.listRoutes)
		fleet.GET("/routes/:routeID", h.getRoute)
		fleet.GET("/buses", h.listBuses)
		fleet.GET("/buses/:busID", h.getBus)
	}
}

// listRoutes godoc
// @Summary List routes
// @Description Retrieves every route in the fleet catalog
// @Tags fleet
// @Produce json
// @Success 200 {object} dto.ListRoutesResponse
// @Router /fleet/routes [get]
func (h *fleetHandler) listRoutes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	routes, err := h.fleetService.ListRoutes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list routes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list routes"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListRoutesResponse(routes))
}

// getRoute godoc
// @Summary Get a route by ID
// @Tags fleet
// @Produce json
// @Param routeID path string true "Route ID"
// @Success 200 {object} dto.RouteResponse
// @Failure 404 {object} map[string]string "Route not found"
// @Router /fleet/routes/{routeID} [get]
func (h *fleetHandler) getRoute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	routeID := c.Param("routeID")

	route, err := h.fleetService.GetRoute(c.Request.Context(), routeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			logger.Error("Failed to get route", slog.String("route_id", routeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve route"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToRouteResponse(route))
}

// listBuses godoc
// @Summary List buses
// @Description Retrieves every bus with its current simulated position
// @Tags fleet
// @Produce json
// @Success 200 {object} dto.ListBusesResponse
// @Router /fleet/buses [get]
func (h *fleetHandler) listBuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	buses, err := h.fleetService.ListBuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list buses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list buses"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListBusesResponse(buses))
}

// getBus godoc
// @Summary Get a bus by ID
// @Tags fleet
// @Produce json
// @Param busID path string true "Canonical bus ID (BUS-NNN)"
// @Success 200 {object} dto.BusResponse
// @Failure 404 {object} map[string]string "Bus not found"
// @Router /fleet/buses/{busID} [get]
func (h *fleetHandler) getBus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	busID := c.Param("busID")

	bus, err := h.fleetService.GetBus(c.Request.Context(), busID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
		} else {
			logger.Error("Failed to get bus", slog.String("bus_id", busID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bus"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToBusResponse(bus))
}
