package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/services/tracking"
)

const defaultHistoryLimit = 10

// TrackingUC implements the tracking.TrackingUC interface
type TrackingUC struct {
	repo            tracking.LocationRepo
	truckRepo       tracking.TruckRepo
	gw              tracking.TrackingGW
	persistTimeout  time.Duration
	defaultRadiusKm float64

	// locks serializes mutations per truck; different trucks proceed
	// concurrently.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(repo tracking.LocationRepo, truckRepo tracking.TruckRepo, gw tracking.TrackingGW, cfg models.TrackingConfig) *TrackingUC {
	timeout := time.Duration(cfg.PersistTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	radius := cfg.DefaultRadiusKm
	if radius <= 0 {
		radius = 1.0
	}
	return &TrackingUC{
		repo:            repo,
		truckRepo:       truckRepo,
		gw:              gw,
		persistTimeout:  timeout,
		defaultRadiusKm: radius,
		locks:           make(map[string]*sync.Mutex),
	}
}

// truckLock returns the mutex serializing mutations for one truck.
func (uc *TrackingUC) truckLock(truckID string) *sync.Mutex {
	uc.locksMu.Lock()
	defer uc.locksMu.Unlock()

	l, exists := uc.locks[truckID]
	if !exists {
		l = &sync.Mutex{}
		uc.locks[truckID] = l
	}
	return l
}

// SubmitReport validates and reconciles an incoming location report.
func (uc *TrackingUC) SubmitReport(ctx context.Context, truckID string, report *models.LocationReport) (models.SubmitResult, error) {
	if err := report.Validate(); err != nil {
		return models.SubmitResult{}, fmt.Errorf("%w: %v", tracking.ErrValidation, err)
	}

	if report.Source == "" {
		report.Source = models.SourceManual
	}
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now()
	}
	if report.Confidence == "" {
		report.Confidence = deriveConfidence(report)
	}

	truck, err := uc.truckRepo.GetTruck(ctx, truckID)
	if err != nil {
		return models.SubmitResult{}, err
	}

	// Live GPS pings are accepted even without an active session (the
	// owner is authoritative over the truck's position), but the gap
	// is logged so it stays observable.
	if report.Source == models.SourceLiveGPS {
		if active, serr := uc.HasActiveSession(ctx, truckID); serr == nil && !active {
			logger.Warn("Live GPS ping without an active tracking session",
				logger.String("truck_id", truckID))
		}
	}

	lock := uc.truckLock(truckID)
	lock.Lock()

	result, dec, err := uc.applyReport(ctx, truckID, truck.Preferences, report)
	if err != nil {
		lock.Unlock()
		return models.SubmitResult{}, err
	}

	// Events are handed to the gateway before the lock is released so
	// subscribers see accepted locations in store order. The gateway
	// only enqueues here; delivery happens on its own worker and never
	// fails the submission.
	if result.Accepted {
		event := models.LocationUpdatedEvent{
			TruckID:   truckID,
			TruckName: truck.Name,
			Location:  *report,
			Source:    report.Source,
			Timestamp: report.Timestamp,
		}
		if err := uc.gw.PublishLocationUpdated(ctx, event); err != nil {
			logger.Warn("Failed to publish location update",
				logger.String("truck_id", truckID),
				logger.Err(err))
		}
	}

	if report.Source == models.SourceCustomer && dec != decisionForbidden {
		notice := models.SightingNotice{
			TruckID:              truckID,
			ReportedBy:           report.ReportedBy,
			RequiresVerification: result.RequiresVerification,
			Timestamp:            report.Timestamp,
		}
		if err := uc.gw.PublishSighting(ctx, notice); err != nil {
			logger.Warn("Failed to publish sighting notice",
				logger.String("truck_id", truckID),
				logger.Err(err))
		}
	}
	lock.Unlock()

	return result, nil
}

// applyReport runs the reconciliation and store mutation under the
// per-truck lock. Persistence is bounded by persistTimeout; timeouts
// and store failures surface as ErrUnavailable with the submission not
// applied.
func (uc *TrackingUC) applyReport(ctx context.Context, truckID string, prefs models.TruckPreferences, report *models.LocationReport) (models.SubmitResult, decision, error) {
	pctx, cancel := context.WithTimeout(ctx, uc.persistTimeout)
	defer cancel()

	current, err := uc.repo.GetCurrent(pctx, truckID)
	if err != nil {
		return models.SubmitResult{}, 0, fmt.Errorf("%w: loading current location: %v", tracking.ErrUnavailable, err)
	}

	dec := decideReport(current, report, prefs)
	if dec == decisionForbidden {
		return models.SubmitResult{}, dec, fmt.Errorf("%w: customer reports are disabled for this truck", tracking.ErrForbidden)
	}

	if dec == decisionRecordOnly {
		// Lands in history without becoming authoritative.
		if err := uc.repo.AppendHistory(pctx, truckID, *report); err != nil {
			return models.SubmitResult{}, dec, fmt.Errorf("%w: appending history: %v", tracking.ErrUnavailable, err)
		}
		return models.SubmitResult{Accepted: false, RequiresVerification: true}, dec, nil
	}

	// Push the outgoing current into history before the incoming report
	// so the list stays most-recent-first, unless it only carried the
	// legacy (0,0) sentinel.
	if current != nil && current.HasCoordinates() {
		if err := uc.repo.AppendHistory(pctx, truckID, *current); err != nil {
			return models.SubmitResult{}, dec, fmt.Errorf("%w: archiving previous location: %v", tracking.ErrUnavailable, err)
		}
	}

	if err := uc.repo.AppendHistory(pctx, truckID, *report); err != nil {
		return models.SubmitResult{}, dec, fmt.Errorf("%w: appending history: %v", tracking.ErrUnavailable, err)
	}

	if err := uc.repo.SetCurrent(pctx, truckID, report); err != nil {
		return models.SubmitResult{}, dec, fmt.Errorf("%w: storing current location: %v", tracking.ErrUnavailable, err)
	}

	return models.SubmitResult{Accepted: true}, dec, nil
}

// deriveConfidence maps source (and GPS accuracy) to a trust label.
func deriveConfidence(report *models.LocationReport) models.Confidence {
	switch report.Source {
	case models.SourceOwner, models.SourceAdmin:
		return models.ConfidenceHigh
	case models.SourceLiveGPS:
		return models.ConfidenceForAccuracy(report.Accuracy)
	default:
		return models.ConfidenceMedium
	}
}

// GetCurrentLocation returns the accepted current location;
// ErrNotFound when the truck has never reported one.
func (uc *TrackingUC) GetCurrentLocation(ctx context.Context, truckID string) (*models.LocationReport, error) {
	current, err := uc.repo.GetCurrent(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading current location: %v", tracking.ErrUnavailable, err)
	}
	if current == nil {
		return nil, fmt.Errorf("%w: truck %s has no reported location", tracking.ErrNotFound, truckID)
	}
	return current, nil
}

// GetLocationHistory returns up to limit entries, most recent first.
func (uc *TrackingUC) GetLocationHistory(ctx context.Context, truckID string, limit int) ([]models.LocationReport, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > models.DefaultHistoryCap {
		limit = models.DefaultHistoryCap
	}
	return uc.repo.GetHistory(ctx, truckID, limit)
}

// GetLocationState returns the full per-truck aggregate for detail
// views: current location plus bounded history in one read. Unlike
// GetCurrentLocation, a truck that never reported is not an error here;
// it yields a state with a nil current.
func (uc *TrackingUC) GetLocationState(ctx context.Context, truckID string) (*models.TruckLocationState, error) {
	if _, err := uc.truckRepo.GetTruck(ctx, truckID); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetCurrent(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading current location: %v", tracking.ErrUnavailable, err)
	}

	history, err := uc.repo.GetHistory(ctx, truckID, models.DefaultHistoryCap)
	if err != nil {
		return nil, fmt.Errorf("%w: loading location history: %v", tracking.ErrUnavailable, err)
	}

	return &models.TruckLocationState{
		TruckID: truckID,
		Current: current,
		History: history,
	}, nil
}

// NearbyTrucks queries the geo index of accepted locations. A
// non-positive radius selects the configured default.
func (uc *TrackingUC) NearbyTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error) {
	probe := &models.LocationReport{Latitude: latitude, Longitude: longitude}
	if err := probe.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", tracking.ErrValidation, err)
	}
	if radiusKm <= 0 {
		radiusKm = uc.defaultRadiusKm
	}
	return uc.repo.NearbyTrucks(ctx, latitude, longitude, radiusKm)
}

// IsOwner reports whether userID owns truckID.
func (uc *TrackingUC) IsOwner(ctx context.Context, userID, truckID string) (bool, error) {
	return uc.truckRepo.IsOwner(ctx, userID, truckID)
}

// SetTruckStatus flips the truck-level active flag and publishes a
// status_updated event. An inactive truck is dropped from the geo
// index so it stops appearing in nearby queries.
func (uc *TrackingUC) SetTruckStatus(ctx context.Context, truckID string, active bool) error {
	truck, err := uc.truckRepo.GetTruck(ctx, truckID)
	if err != nil {
		return err
	}

	if err := uc.truckRepo.SetActive(ctx, truckID, active); err != nil {
		return fmt.Errorf("%w: updating truck status: %v", tracking.ErrUnavailable, err)
	}

	if !active {
		if err := uc.repo.RemoveFromGeo(ctx, truckID); err != nil {
			logger.Warn("Failed to remove truck from geo index",
				logger.String("truck_id", truckID),
				logger.Err(err))
		}
	}

	event := models.TruckStatusEvent{
		TruckID:   truckID,
		TruckName: truck.Name,
		IsActive:  active,
		Timestamp: time.Now(),
	}
	if err := uc.gw.PublishTruckStatus(ctx, event); err != nil {
		logger.Warn("Failed to publish truck status",
			logger.String("truck_id", truckID),
			logger.Err(err))
	}

	return nil
}
