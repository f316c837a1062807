package tracking

import (
	"context"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
)

// LocationRepo owns the per-truck tracking state: the accepted current
// location, the bounded history audit log, the live tracking session
// and the geo index of accepted positions. Implementations are
// swappable (Redis in production, in-memory for tests).
type LocationRepo interface {
	// GetCurrent returns the accepted current location, or nil when
	// the truck has never had one.
	GetCurrent(ctx context.Context, truckID string) (*models.LocationReport, error)

	// SetCurrent replaces the accepted current location and updates
	// the geo index.
	SetCurrent(ctx context.Context, truckID string, report *models.LocationReport) error

	// AppendHistory prepends a report to the audit history, trimming
	// to the configured cap (oldest entries evicted first).
	AppendHistory(ctx context.Context, truckID string, report models.LocationReport) error

	// GetHistory returns up to limit entries, most recent first.
	GetHistory(ctx context.Context, truckID string, limit int) ([]models.LocationReport, error)

	// GetSession returns the live tracking session, or nil when the
	// truck never started one.
	GetSession(ctx context.Context, truckID string) (*models.LiveTrackingSession, error)

	// SaveSession stores the live tracking session state.
	SaveSession(ctx context.Context, session *models.LiveTrackingSession) error

	// NearbyTrucks returns trucks whose accepted current location is
	// within radiusKm of the given point, nearest first.
	NearbyTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error)

	// RemoveFromGeo drops a truck from the geo index (truck went
	// inactive); its stored location is untouched.
	RemoveFromGeo(ctx context.Context, truckID string) error
}

// TruckRepo is the read side of the truck aggregate owned by the
// marketplace CRUD service: ownership, preferences and active flag.
type TruckRepo interface {
	// GetTruck returns the truck projection; ErrNotFound for unknown ids.
	GetTruck(ctx context.Context, truckID string) (*models.Truck, error)

	// IsOwner reports whether userID owns truckID.
	IsOwner(ctx context.Context, userID, truckID string) (bool, error)

	// SetActive flips the truck-level active flag.
	SetActive(ctx context.Context, truckID string, active bool) error
}
