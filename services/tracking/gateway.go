package tracking

import (
	"context"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
)

// TrackingGW publishes tracking events to subscribers. Publishing is
// fire-and-forget: the usecase logs failures and never fails the
// underlying submission because of them.
type TrackingGW interface {
	PublishLocationUpdated(ctx context.Context, event models.LocationUpdatedEvent) error
	PublishTrackingStarted(ctx context.Context, event models.TrackingSessionEvent) error
	PublishTrackingStopped(ctx context.Context, event models.TrackingSessionEvent) error
	PublishTruckStatus(ctx context.Context, event models.TruckStatusEvent) error
	PublishSighting(ctx context.Context, notice models.SightingNotice) error
}
