package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/constants"
	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	natspkg "github.com/curbsidelabs/trucktrack/internal/pkg/nats"
	"github.com/curbsidelabs/trucktrack/internal/pkg/retry"
)

const (
	publishQueueSize = 256
	publishTimeout   = 10 * time.Second
)

type publishJob struct {
	subject string
	payload interface{}
}

// TrackingGW implements the tracking.TrackingGW interface over NATS.
// Publish calls only enqueue; a single worker delivers jobs in enqueue
// order, retrying transient failures with backoff off the caller's
// path. A job that exhausts its retries is dropped with a log.
type TrackingGW struct {
	producer *natspkg.Producer
	retrier  *retry.Retrier

	jobs      chan publishJob
	done      chan struct{}
	closeOnce sync.Once
}

// NewTrackingGW creates a new tracking gateway and starts its delivery worker
func NewTrackingGW(client *natspkg.Client) *TrackingGW {
	gw := &TrackingGW{
		producer: natspkg.NewProducer(client),
		retrier:  retry.NewWithDefaults(),
		jobs:     make(chan publishJob, publishQueueSize),
		done:     make(chan struct{}),
	}
	go gw.run()
	return gw
}

func (g *TrackingGW) run() {
	defer close(g.done)
	for job := range g.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := g.retrier.Execute(ctx, func(context.Context) error {
			return g.producer.Publish(job.subject, job.payload)
		})
		cancel()
		if err != nil {
			logger.Warn("Dropping event after publish retries",
				logger.String("subject", job.subject),
				logger.Err(err))
		}
	}
}

// publish enqueues a job. A full queue drops the event instead of
// blocking the submitter.
func (g *TrackingGW) publish(subject string, payload interface{}) error {
	select {
	case g.jobs <- publishJob{subject: subject, payload: payload}:
		return nil
	default:
		return fmt.Errorf("publish queue full, dropping %s event", subject)
	}
}

// Close stops accepting new events and waits for queued ones to drain
func (g *TrackingGW) Close() {
	g.closeOnce.Do(func() { close(g.jobs) })
	<-g.done
}

// PublishLocationUpdated publishes an accepted location change
func (g *TrackingGW) PublishLocationUpdated(_ context.Context, event models.LocationUpdatedEvent) error {
	return g.publish(constants.SubjectLocationUpdated, event)
}

// PublishTrackingStarted publishes a live tracking session start
func (g *TrackingGW) PublishTrackingStarted(_ context.Context, event models.TrackingSessionEvent) error {
	return g.publish(constants.SubjectTrackingStarted, event)
}

// PublishTrackingStopped publishes a live tracking session stop
func (g *TrackingGW) PublishTrackingStopped(_ context.Context, event models.TrackingSessionEvent) error {
	return g.publish(constants.SubjectTrackingStopped, event)
}

// PublishTruckStatus publishes a truck-level active flag change
func (g *TrackingGW) PublishTruckStatus(_ context.Context, event models.TruckStatusEvent) error {
	return g.publish(constants.SubjectTruckStatus, event)
}

// PublishSighting publishes an owner-directed customer sighting notice
func (g *TrackingGW) PublishSighting(_ context.Context, notice models.SightingNotice) error {
	return g.publish(constants.SubjectTruckSighting, notice)
}
