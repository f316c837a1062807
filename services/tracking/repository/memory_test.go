package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCurrentLocationRoundtrip(t *testing.T) {
	repo := NewMemoryLocationRepository(10)
	ctx := context.Background()

	current, err := repo.GetCurrent(ctx, "truck-1")
	require.NoError(t, err)
	assert.Nil(t, current)

	report := &models.LocationReport{
		Source:    models.SourceOwner,
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: time.Now(),
	}
	require.NoError(t, repo.SetCurrent(ctx, "truck-1", report))

	got, err := repo.GetCurrent(ctx, "truck-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, report.Latitude, got.Latitude)

	// Stored state is isolated from caller mutations.
	report.Latitude = 0
	got2, err := repo.GetCurrent(ctx, "truck-1")
	require.NoError(t, err)
	assert.Equal(t, 37.7749, got2.Latitude)
}

func TestMemoryHistoryTrimsToCap(t *testing.T) {
	repo := NewMemoryLocationRepository(5)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		report := models.LocationReport{
			Source:    models.SourceOwner,
			Latitude:  float64(i),
			Longitude: -122.0,
		}
		require.NoError(t, repo.AppendHistory(ctx, "truck-1", report))
	}

	history, err := repo.GetHistory(ctx, "truck-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 5)

	// Most recent first, oldest evicted.
	assert.Equal(t, float64(7), history[0].Latitude)
	assert.Equal(t, float64(3), history[4].Latitude)
}

func TestMemoryHistoryLimit(t *testing.T) {
	repo := NewMemoryLocationRepository(10)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, repo.AppendHistory(ctx, "truck-1", models.LocationReport{
			Latitude:  float64(i),
			Longitude: -122.0,
		}))
	}

	history, err := repo.GetHistory(ctx, "truck-1", 3)
	require.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, float64(5), history[0].Latitude)
}

func TestMemorySessionRoundtrip(t *testing.T) {
	repo := NewMemoryLocationRepository(10)
	ctx := context.Background()

	session, err := repo.GetSession(ctx, "truck-1")
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, repo.SaveSession(ctx, &models.LiveTrackingSession{
		TruckID:   "truck-1",
		SessionID: "session-1",
		IsActive:  true,
		StartTime: time.Now(),
	}))

	got, err := repo.GetSession(ctx, "truck-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsActive)
	assert.Equal(t, "session-1", got.SessionID)
}

func TestMemoryNearbyTrucks(t *testing.T) {
	repo := NewMemoryLocationRepository(10)
	ctx := context.Background()

	// Ferry Building, Oakland and Los Angeles.
	points := map[string]models.LocationReport{
		"truck-sf":  {Latitude: 37.7955, Longitude: -122.3937},
		"truck-oak": {Latitude: 37.8044, Longitude: -122.2712},
		"truck-la":  {Latitude: 34.0522, Longitude: -118.2437},
	}
	for id, report := range points {
		r := report
		require.NoError(t, repo.SetCurrent(ctx, id, &r))
	}

	results, err := repo.NearbyTrucks(ctx, 37.7749, -122.4194, 15)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Nearest first.
	assert.Equal(t, "truck-sf", results[0].TruckID)
	assert.Equal(t, "truck-oak", results[1].TruckID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
	assert.NotEmpty(t, results[0].Geohash)
}

func TestMemoryRemoveFromGeo(t *testing.T) {
	repo := NewMemoryLocationRepository(10)
	ctx := context.Background()

	require.NoError(t, repo.SetCurrent(ctx, "truck-1", &models.LocationReport{
		Source:    models.SourceOwner,
		Latitude:  37.7749,
		Longitude: -122.4194,
	}))

	trucks, err := repo.NearbyTrucks(ctx, 37.7749, -122.4194, 5)
	require.NoError(t, err)
	require.Len(t, trucks, 1)

	require.NoError(t, repo.RemoveFromGeo(ctx, "truck-1"))

	trucks, err = repo.NearbyTrucks(ctx, 37.7749, -122.4194, 5)
	require.NoError(t, err)
	assert.Empty(t, trucks)

	// The current location itself survives removal from the index.
	current, err := repo.GetCurrent(ctx, "truck-1")
	require.NoError(t, err)
	require.NotNil(t, current)

	// A fresh accepted location puts the truck back.
	require.NoError(t, repo.SetCurrent(ctx, "truck-1", &models.LocationReport{
		Source:    models.SourceOwner,
		Latitude:  37.7750,
		Longitude: -122.4195,
	}))
	trucks, err = repo.NearbyTrucks(ctx, 37.7749, -122.4194, 5)
	require.NoError(t, err)
	assert.Len(t, trucks, 1)
}

func TestMemoryTruckRepo(t *testing.T) {
	repo := NewMemoryTruckRepository()
	ctx := context.Background()

	repo.Seed(&models.Truck{
		ID:          "truck-1",
		OwnerID:     "owner-1",
		Name:        "Paco's Tacos",
		IsActive:    true,
		Preferences: models.DefaultTruckPreferences(),
	})

	truck, err := repo.GetTruck(ctx, "truck-1")
	require.NoError(t, err)
	assert.Equal(t, "Paco's Tacos", truck.Name)

	_, err = repo.GetTruck(ctx, "truck-2")
	assert.Error(t, err)

	owns, err := repo.IsOwner(ctx, "owner-1", "truck-1")
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = repo.IsOwner(ctx, "owner-2", "truck-1")
	require.NoError(t, err)
	assert.False(t, owns)

	require.NoError(t, repo.SetActive(ctx, "truck-1", false))
	truck, err = repo.GetTruck(ctx, "truck-1")
	require.NoError(t, err)
	assert.False(t, truck.IsActive)
}

func TestMemoryStateIsolationAcrossTrucks(t *testing.T) {
	repo := NewMemoryLocationRepository(10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		truckID := fmt.Sprintf("truck-%d", i)
		require.NoError(t, repo.AppendHistory(ctx, truckID, models.LocationReport{
			Latitude:  float64(i + 1),
			Longitude: -122.0,
		}))
	}

	history, err := repo.GetHistory(ctx, "truck-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, float64(2), history[0].Latitude)
}
