package usecase

import (
	"context"
	"testing"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTracking(t *testing.T) {
	uc, _, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishTrackingStarted(gomock.Any(), gomock.Any()).Return(nil)

	sessionID, err := uc.StartTracking(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)

	active, err := uc.HasActiveSession(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestStartTrackingConflictWhileActive(t *testing.T) {
	uc, _, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishTrackingStarted(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.StartTracking(context.Background(), testTruckID)
	require.NoError(t, err)

	_, err = uc.StartTracking(context.Background(), testTruckID)
	assert.ErrorIs(t, err, tracking.ErrConflict)
}

func TestStartTrackingUnknownTruck(t *testing.T) {
	uc, _, _ := newTestUC(t, models.DefaultTruckPreferences())

	_, err := uc.StartTracking(context.Background(), "no-such-truck")
	assert.ErrorIs(t, err, tracking.ErrNotFound)
}

func TestStopTracking(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishTrackingStarted(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTrackingStopped(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.StartTracking(context.Background(), testTruckID)
	require.NoError(t, err)

	err = uc.StopTracking(context.Background(), testTruckID)
	require.NoError(t, err)

	active, err := uc.HasActiveSession(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.False(t, active)

	session, err := repo.GetSession(context.Background(), testTruckID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.False(t, session.EndTime.IsZero())
}

func TestStopTrackingWithoutSessionIsNoop(t *testing.T) {
	uc, _, _ := newTestUC(t, models.DefaultTruckPreferences())

	err := uc.StopTracking(context.Background(), testTruckID)
	assert.NoError(t, err)
}

func TestStartAfterStopOpensNewSession(t *testing.T) {
	uc, _, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishTrackingStarted(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gw.EXPECT().PublishTrackingStopped(gomock.Any(), gomock.Any()).Return(nil)

	first, err := uc.StartTracking(context.Background(), testTruckID)
	require.NoError(t, err)

	require.NoError(t, uc.StopTracking(context.Background(), testTruckID))

	second, err := uc.StartTracking(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
