package tracking

import (
	"context"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
)

// TrackingUC is the external surface of the location tracking core.
type TrackingUC interface {
	// SubmitReport validates and reconciles an incoming report.
	// Mutations for a single truck are serialized; different trucks
	// proceed concurrently. On acceptance exactly one location_updated
	// event is published.
	SubmitReport(ctx context.Context, truckID string, report *models.LocationReport) (models.SubmitResult, error)

	// GetCurrentLocation returns the accepted current location;
	// ErrNotFound when the truck has never reported one.
	GetCurrentLocation(ctx context.Context, truckID string) (*models.LocationReport, error)

	// GetLocationHistory returns up to limit history entries, most
	// recent first. limit <= 0 selects the default of 10.
	GetLocationHistory(ctx context.Context, truckID string, limit int) ([]models.LocationReport, error)

	// GetLocationState returns the full per-truck aggregate: the current
	// location (nil when never reported) plus the bounded history.
	GetLocationState(ctx context.Context, truckID string) (*models.TruckLocationState, error)

	// StartTracking opens a live GPS session. Returns ErrConflict when
	// a session is already active (strict, non-idempotent semantics).
	StartTracking(ctx context.Context, truckID string) (string, error)

	// StopTracking closes the live GPS session. No-op when none is active.
	StopTracking(ctx context.Context, truckID string) error

	// SetTruckStatus flips the truck-level active flag and publishes a
	// status_updated event.
	SetTruckStatus(ctx context.Context, truckID string, active bool) error

	// NearbyTrucks queries the geo index of accepted locations.
	// radiusKm <= 0 selects the configured default radius.
	NearbyTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error)

	// IsOwner reports whether userID owns truckID.
	IsOwner(ctx context.Context, userID, truckID string) (bool, error)
}
