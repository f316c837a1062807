package http

import (
	"net/http"
	"strconv"

	"github.com/curbsidelabs/trucktrack/internal/utils"
	"github.com/labstack/echo/v4"
)

// GetCurrentLocation returns the truck's accepted current location
func (h *TrackingHandler) GetCurrentLocation(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	location, err := h.trackingUC.GetCurrentLocation(c.Request().Context(), truckID)
	if err != nil {
		return h.respondError(c, truckID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Current location retrieved", location)
}

// GetLocationHistory returns the truck's location history, most recent first
func (h *TrackingHandler) GetLocationHistory(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "invalid limit")
		}
		limit = parsed
	}

	history, err := h.trackingUC.GetLocationHistory(c.Request().Context(), truckID, limit)
	if err != nil {
		return h.respondError(c, truckID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved", history)
}

// GetLocationState returns the combined current location and history
func (h *TrackingHandler) GetLocationState(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	state, err := h.trackingUC.GetLocationState(c.Request().Context(), truckID)
	if err != nil {
		return h.respondError(c, truckID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location state retrieved", state)
}

// NearbyTrucks returns trucks near a point, nearest first
func (h *TrackingHandler) NearbyTrucks(c echo.Context) error {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")

	if latStr == "" || lngStr == "" {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	// radius_km is optional; the usecase falls back to its configured
	// default when it is absent.
	radius := 0.0
	if radiusStr := c.QueryParam("radius_km"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius")
		}
	}

	trucks, err := h.trackingUC.NearbyTrucks(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return h.respondError(c, "", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby trucks found", trucks)
}
