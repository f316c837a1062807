package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/middleware"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/internal/utils"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/labstack/echo/v4"
)

// TrackingHandler handles HTTP requests for location tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

type overrideRequest struct {
	locationRequest
	Confidence string `json:"confidence,omitempty"`
}

type statusRequest struct {
	IsActive bool `json:"is_active"`
}

// OwnerCheckin handles an owner's manual location check-in
func (h *TrackingHandler) OwnerCheckin(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	if err := h.requireOwnership(c, truckID); err != nil {
		return err
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	report := &models.LocationReport{
		Source:     models.SourceOwner,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Confidence: models.ConfidenceHigh,
		Notes:      req.Notes,
	}

	return h.submit(c, truckID, report)
}

// LiveGPSPing handles a high-frequency GPS ping from the owner's device
func (h *TrackingHandler) LiveGPSPing(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	if err := h.requireOwnership(c, truckID); err != nil {
		return err
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	report := &models.LocationReport{
		Source:     models.SourceLiveGPS,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		Confidence: models.ConfidenceForAccuracy(req.Accuracy),
	}
	if req.Accuracy > 0 {
		report.Notes = fmt.Sprintf("GPS accuracy: %.0fm", req.Accuracy)
	}

	return h.submit(c, truckID, report)
}

// CustomerReport handles a customer sighting report
func (h *TrackingHandler) CustomerReport(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	report := &models.LocationReport{
		Source:     models.SourceCustomer,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Confidence: models.ConfidenceMedium,
		Notes:      req.Notes,
		ReportedBy: middleware.UserID(c),
	}

	return h.submit(c, truckID, report)
}

// AdminOverride handles an unconditional admin location override.
// Route-level middleware enforces the admin role.
func (h *TrackingHandler) AdminOverride(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	var req overrideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	confidence := models.ConfidenceMedium
	if req.Confidence != "" {
		parsed, err := models.ParseConfidence(req.Confidence)
		if err != nil {
			return utils.BadRequestResponse(c, "confidence must be high, medium or low")
		}
		confidence = parsed
	}

	report := &models.LocationReport{
		Source:     models.SourceAdmin,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Confidence: confidence,
		Notes:      req.Notes,
		ReportedBy: middleware.UserID(c),
	}

	return h.submit(c, truckID, report)
}

// SocialUpdate handles a simulated social-media location post from the
// internal scraping job (API-key protected route).
func (h *TrackingHandler) SocialUpdate(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	var msg models.SocialLocationMessage
	if err := c.Bind(&msg); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	source, err := models.ParseReportSource(msg.Platform)
	if err != nil || !source.IsSocial() {
		return utils.BadRequestResponse(c, "platform must be instagram, facebook or twitter")
	}

	confidence := models.ConfidenceMedium
	if msg.Confidence != "" {
		parsed, err := models.ParseConfidence(string(msg.Confidence))
		if err != nil {
			return utils.BadRequestResponse(c, "confidence must be high, medium or low")
		}
		confidence = parsed
	}

	report := &models.LocationReport{
		Source:     source,
		Latitude:   msg.Latitude,
		Longitude:  msg.Longitude,
		Address:    msg.Address,
		City:       msg.City,
		State:      msg.State,
		Confidence: confidence,
		Notes:      msg.Notes,
		Timestamp:  msg.PostedAt,
	}

	return h.submit(c, truckID, report)
}

// StartTracking opens a live GPS session for the truck
func (h *TrackingHandler) StartTracking(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	if err := h.requireOwnership(c, truckID); err != nil {
		return err
	}

	sessionID, err := h.trackingUC.StartTracking(c.Request().Context(), truckID)
	if err != nil {
		return h.respondError(c, truckID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Live tracking started", map[string]string{
		"session_id": sessionID,
	})
}

// StopTracking closes the live GPS session for the truck
func (h *TrackingHandler) StopTracking(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	if err := h.requireOwnership(c, truckID); err != nil {
		return err
	}

	if err := h.trackingUC.StopTracking(c.Request().Context(), truckID); err != nil {
		return h.respondError(c, truckID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Live tracking stopped", nil)
}

// SetStatus toggles the truck-level active flag
func (h *TrackingHandler) SetStatus(c echo.Context) error {
	truckID := c.Param("id")
	if truckID == "" {
		return utils.BadRequestResponse(c, "truck id is required")
	}

	if err := h.requireOwnership(c, truckID); err != nil {
		return err
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.trackingUC.SetTruckStatus(c.Request().Context(), truckID, req.IsActive); err != nil {
		return h.respondError(c, truckID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck status updated", map[string]bool{
		"is_active": req.IsActive,
	})
}

// submit runs a report through the store and shapes the three-way
// outcome: accepted, pending verification, or rejected.
func (h *TrackingHandler) submit(c echo.Context, truckID string, report *models.LocationReport) error {
	result, err := h.trackingUC.SubmitReport(c.Request().Context(), truckID, report)
	if err != nil {
		return h.respondError(c, truckID, err)
	}

	if result.RequiresVerification {
		return utils.SuccessResponse(c, http.StatusAccepted, "Location report recorded, pending verification", result)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", result)
}

// requireOwnership ensures the authenticated caller owns the truck
func (h *TrackingHandler) requireOwnership(c echo.Context, truckID string) error {
	userID := middleware.UserID(c)
	owns, err := h.trackingUC.IsOwner(c.Request().Context(), userID, truckID)
	if err != nil {
		return h.respondError(c, truckID, err)
	}
	if !owns {
		return utils.ForbiddenResponse(c, "caller does not own this truck")
	}
	return nil
}

// respondError maps domain errors to HTTP statuses
func (h *TrackingHandler) respondError(c echo.Context, truckID string, err error) error {
	switch {
	case errors.Is(err, tracking.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, tracking.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, tracking.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, tracking.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, tracking.ErrUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		logger.Error("Tracking operation failed",
			logger.String("truck_id", truckID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "operation failed")
	}
}
