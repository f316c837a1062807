package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/google/uuid"
)

// StartTracking opens a live GPS session for the truck.
//
// Semantics are strict, not idempotent: a second start while a session
// is active returns ErrConflict. The session id is a per-session audit
// token; silently returning the existing one would hide client bugs.
func (uc *TrackingUC) StartTracking(ctx context.Context, truckID string) (string, error) {
	truck, err := uc.truckRepo.GetTruck(ctx, truckID)
	if err != nil {
		return "", err
	}

	lock := uc.truckLock(truckID)
	lock.Lock()

	session, err := uc.getSessionLocked(ctx, truckID)
	if err != nil {
		lock.Unlock()
		return "", err
	}

	if session != nil && session.IsActive {
		lock.Unlock()
		return "", fmt.Errorf("%w: live tracking already active for truck %s", tracking.ErrConflict, truckID)
	}

	session = &models.LiveTrackingSession{
		TruckID:   truckID,
		SessionID: uuid.NewString(),
		IsActive:  true,
		StartTime: time.Now(),
	}

	if err := uc.saveSessionLocked(ctx, session); err != nil {
		lock.Unlock()
		return "", err
	}
	lock.Unlock()

	uc.publishSessionEvent(ctx, truck.Name, session, true)
	return session.SessionID, nil
}

// StopTracking closes the live GPS session. Stopping a truck with no
// active session is a no-op, not an error.
func (uc *TrackingUC) StopTracking(ctx context.Context, truckID string) error {
	truck, err := uc.truckRepo.GetTruck(ctx, truckID)
	if err != nil {
		return err
	}

	lock := uc.truckLock(truckID)
	lock.Lock()

	session, err := uc.getSessionLocked(ctx, truckID)
	if err != nil {
		lock.Unlock()
		return err
	}

	if session == nil || !session.IsActive {
		lock.Unlock()
		return nil
	}

	session.IsActive = false
	session.EndTime = time.Now()

	if err := uc.saveSessionLocked(ctx, session); err != nil {
		lock.Unlock()
		return err
	}
	lock.Unlock()

	uc.publishSessionEvent(ctx, truck.Name, session, false)
	return nil
}

// HasActiveSession reports whether the truck is currently streaming.
func (uc *TrackingUC) HasActiveSession(ctx context.Context, truckID string) (bool, error) {
	session, err := uc.repo.GetSession(ctx, truckID)
	if err != nil {
		return false, fmt.Errorf("%w: loading session: %v", tracking.ErrUnavailable, err)
	}
	return session != nil && session.IsActive, nil
}

func (uc *TrackingUC) getSessionLocked(ctx context.Context, truckID string) (*models.LiveTrackingSession, error) {
	pctx, cancel := context.WithTimeout(ctx, uc.persistTimeout)
	defer cancel()

	session, err := uc.repo.GetSession(pctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading session: %v", tracking.ErrUnavailable, err)
	}
	return session, nil
}

func (uc *TrackingUC) saveSessionLocked(ctx context.Context, session *models.LiveTrackingSession) error {
	pctx, cancel := context.WithTimeout(ctx, uc.persistTimeout)
	defer cancel()

	if err := uc.repo.SaveSession(pctx, session); err != nil {
		return fmt.Errorf("%w: saving session: %v", tracking.ErrUnavailable, err)
	}
	return nil
}

func (uc *TrackingUC) publishSessionEvent(ctx context.Context, truckName string, session *models.LiveTrackingSession, started bool) {
	event := models.TrackingSessionEvent{
		TruckID:   session.TruckID,
		TruckName: truckName,
		SessionID: session.SessionID,
		IsActive:  session.IsActive,
		Timestamp: time.Now(),
	}

	var err error
	if started {
		err = uc.gw.PublishTrackingStarted(ctx, event)
	} else {
		err = uc.gw.PublishTrackingStopped(ctx, event)
	}
	if err != nil {
		logger.Warn("Failed to publish tracking session event",
			logger.String("truck_id", session.TruckID),
			logger.Bool("started", started),
			logger.Err(err))
	}
}
