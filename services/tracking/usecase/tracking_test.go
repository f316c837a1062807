package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/curbsidelabs/trucktrack/services/tracking/mocks"
	"github.com/curbsidelabs/trucktrack/services/tracking/repository"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTruckID = "truck-1"

func newTestUC(t *testing.T, prefs models.TruckPreferences) (*TrackingUC, *repository.MemoryLocationRepo, *mocks.MockTrackingGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	locationRepo := repository.NewMemoryLocationRepository(models.DefaultHistoryCap)
	truckRepo := repository.NewMemoryTruckRepository()
	truckRepo.Seed(&models.Truck{
		ID:          testTruckID,
		OwnerID:     "owner-1",
		Name:        "Paco's Tacos",
		IsActive:    true,
		Preferences: prefs,
	})

	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(locationRepo, truckRepo, gw, models.TrackingConfig{})
	return uc, locationRepo, gw
}

func ownerReport(lat, lng float64) *models.LocationReport {
	return &models.LocationReport{
		Source:    models.SourceOwner,
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestSubmitReportOwnerAccepted(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.7749, -122.4194))
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.False(t, result.RequiresVerification)

	current, err := repo.GetCurrent(context.Background(), testTruckID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, models.SourceOwner, current.Source)
	assert.Equal(t, models.ConfidenceHigh, current.Confidence)
	assert.False(t, current.Timestamp.IsZero())

	history, err := repo.GetHistory(context.Background(), testTruckID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSubmitReportRejectsInvalidCoordinates(t *testing.T) {
	uc, _, _ := newTestUC(t, models.DefaultTruckPreferences())

	tests := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{"origin sentinel", 0, 0},
		{"latitude out of range", 91, 10},
		{"longitude out of range", 10, 181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.SubmitReport(context.Background(), testTruckID, ownerReport(tt.lat, tt.lng))
			assert.ErrorIs(t, err, tracking.ErrValidation)
		})
	}
}

func TestSubmitReportUnknownTruck(t *testing.T) {
	uc, _, _ := newTestUC(t, models.DefaultTruckPreferences())

	_, err := uc.SubmitReport(context.Background(), "no-such-truck", ownerReport(37.7749, -122.4194))
	assert.ErrorIs(t, err, tracking.ErrNotFound)
}

func TestSubmitReportCustomerForbidden(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.TruckPreferences{AllowCustomerReports: false})
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.7749, -122.4194))
	require.NoError(t, err)

	report := &models.LocationReport{
		Source:    models.SourceCustomer,
		Latitude:  37.8044,
		Longitude: -122.2712,
	}
	_, err = uc.SubmitReport(context.Background(), testTruckID, report)
	assert.ErrorIs(t, err, tracking.ErrForbidden)

	// The rejected report leaves no trace.
	current, err := repo.GetCurrent(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.Equal(t, 37.7749, current.Latitude)

	history, err := repo.GetHistory(context.Background(), testTruckID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSubmitReportCustomerPendingVerification(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.TruckPreferences{
		AllowCustomerReports:        true,
		RequireLocationVerification: true,
	})
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishSighting(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, notice models.SightingNotice) error {
			assert.Equal(t, testTruckID, notice.TruckID)
			assert.True(t, notice.RequiresVerification)
			return nil
		})

	_, err := uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.7749, -122.4194))
	require.NoError(t, err)

	report := &models.LocationReport{
		Source:     models.SourceCustomer,
		Latitude:   37.8044,
		Longitude:  -122.2712,
		ReportedBy: "customer-9",
	}
	result, err := uc.SubmitReport(context.Background(), testTruckID, report)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.True(t, result.RequiresVerification)

	// Recorded in history but not authoritative.
	current, err := repo.GetCurrent(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.Equal(t, models.SourceOwner, current.Source)

	history, err := repo.GetHistory(context.Background(), testTruckID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.SourceCustomer, history[0].Source)
}

func TestSubmitReportHistoryCapped(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	for i := 0; i < 150; i++ {
		report := ownerReport(37.0+float64(i)*0.001, -122.0)
		_, err := uc.SubmitReport(context.Background(), testTruckID, report)
		require.NoError(t, err)
	}

	history, err := repo.GetHistory(context.Background(), testTruckID, models.DefaultHistoryCap)
	require.NoError(t, err)
	assert.Len(t, history, models.DefaultHistoryCap)

	// Most recent submission heads the list.
	assert.InDelta(t, 37.149, history[0].Latitude, 1e-9)
}

func TestSubmitReportSerializedPerTruck(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			report := ownerReport(37.0+float64(i)*0.001, -122.0)
			_, err := uc.SubmitReport(context.Background(), testTruckID, report)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Each accepted report appends itself, and every report after the
	// first also archives the outgoing current.
	history, err := repo.GetHistory(context.Background(), testTruckID, models.DefaultHistoryCap)
	require.NoError(t, err)
	assert.Len(t, history, 2*workers-1)

	current, err := repo.GetCurrent(context.Background(), testTruckID)
	require.NoError(t, err)
	require.NotNil(t, current)
}

func TestSubmitReportPublishOrderMatchesStore(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.DefaultTruckPreferences())

	var mu sync.Mutex
	var published []float64
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.LocationUpdatedEvent) error {
			mu.Lock()
			published = append(published, event.Location.Latitude)
			mu.Unlock()
			return nil
		}).AnyTimes()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.0+float64(i)*0.001, -122.0))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// The last event subscribers see must carry the location that won;
	// a stale broadcast here would leave clients showing an old spot.
	current, err := repo.GetCurrent(context.Background(), testTruckID)
	require.NoError(t, err)
	require.NotNil(t, current)

	require.Len(t, published, workers)
	assert.Equal(t, current.Latitude, published[len(published)-1])
}

func TestGetCurrentLocationNotFound(t *testing.T) {
	uc, _, _ := newTestUC(t, models.DefaultTruckPreferences())

	_, err := uc.GetCurrentLocation(context.Background(), testTruckID)
	assert.ErrorIs(t, err, tracking.ErrNotFound)
}

func TestGetLocationState(t *testing.T) {
	uc, _, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Before any report the truck still has a state, just an empty one.
	state, err := uc.GetLocationState(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.Nil(t, state.Current)
	assert.Empty(t, state.History)

	_, err = uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.7749, -122.4194))
	require.NoError(t, err)
	_, err = uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.7750, -122.4195))
	require.NoError(t, err)

	state, err = uc.GetLocationState(context.Background(), testTruckID)
	require.NoError(t, err)
	assert.Equal(t, testTruckID, state.TruckID)
	require.NotNil(t, state.Current)
	assert.InDelta(t, 37.7750, state.Current.Latitude, 1e-9)
	assert.Len(t, state.History, 2)

	_, err = uc.GetLocationState(context.Background(), "no-such-truck")
	assert.ErrorIs(t, err, tracking.ErrNotFound)
}

func TestGetLocationHistoryDefaultLimit(t *testing.T) {
	uc, _, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	for i := 0; i < 15; i++ {
		_, err := uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.0+float64(i)*0.001, -122.0))
		require.NoError(t, err)
	}

	history, err := uc.GetLocationHistory(context.Background(), testTruckID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 10)
}

func TestNearbyTrucksValidation(t *testing.T) {
	uc, _, _ := newTestUC(t, models.DefaultTruckPreferences())

	_, err := uc.NearbyTrucks(context.Background(), 0, 0, 5)
	assert.ErrorIs(t, err, tracking.ErrValidation)

	// Omitted radius falls back to the configured default.
	trucks, err := uc.NearbyTrucks(context.Background(), 37.7749, -122.4194, 0)
	require.NoError(t, err)
	assert.Empty(t, trucks)
}

func TestSetTruckStatusRemovesFromNearby(t *testing.T) {
	uc, _, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTruckStatus(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.SubmitReport(context.Background(), testTruckID, ownerReport(37.7749, -122.4194))
	require.NoError(t, err)

	trucks, err := uc.NearbyTrucks(context.Background(), 37.7749, -122.4194, 5)
	require.NoError(t, err)
	require.Len(t, trucks, 1)

	require.NoError(t, uc.SetTruckStatus(context.Background(), testTruckID, false))

	trucks, err = uc.NearbyTrucks(context.Background(), 37.7749, -122.4194, 5)
	require.NoError(t, err)
	assert.Empty(t, trucks)
}

func TestSetTruckStatus(t *testing.T) {
	uc, _, gw := newTestUC(t, models.DefaultTruckPreferences())
	gw.EXPECT().PublishTruckStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.TruckStatusEvent) error {
			assert.Equal(t, testTruckID, event.TruckID)
			assert.False(t, event.IsActive)
			return nil
		})

	err := uc.SetTruckStatus(context.Background(), testTruckID, false)
	require.NoError(t, err)
}
