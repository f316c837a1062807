package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/internal/utils"
	"github.com/curbsidelabs/trucktrack/services/tracking"
)

type memoryState struct {
	current *models.LocationReport
	history []models.LocationReport
	session *models.LiveTrackingSession
}

// MemoryLocationRepo is a map-backed LocationRepo used by tests and
// the single-binary demo mode.
type MemoryLocationRepo struct {
	mu         sync.RWMutex
	historyCap int
	state      map[string]*memoryState
	geo        map[string]struct{}
}

// NewMemoryLocationRepository creates an in-memory location repository
func NewMemoryLocationRepository(historyCap int) *MemoryLocationRepo {
	if historyCap <= 0 {
		historyCap = models.DefaultHistoryCap
	}
	return &MemoryLocationRepo{
		historyCap: historyCap,
		state:      make(map[string]*memoryState),
		geo:        make(map[string]struct{}),
	}
}

func (r *MemoryLocationRepo) truckState(truckID string) *memoryState {
	st, exists := r.state[truckID]
	if !exists {
		st = &memoryState{}
		r.state[truckID] = st
	}
	return st
}

// GetCurrent returns the accepted current location, or nil when unset
func (r *MemoryLocationRepo) GetCurrent(_ context.Context, truckID string) (*models.LocationReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, exists := r.state[truckID]
	if !exists || st.current == nil {
		return nil, nil
	}
	cp := *st.current
	return &cp, nil
}

// SetCurrent replaces the accepted current location
func (r *MemoryLocationRepo) SetCurrent(_ context.Context, truckID string, report *models.LocationReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *report
	r.truckState(truckID).current = &cp
	r.geo[truckID] = struct{}{}
	return nil
}

// AppendHistory prepends a report, trimming to the cap
func (r *MemoryLocationRepo) AppendHistory(_ context.Context, truckID string, report models.LocationReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.truckState(truckID)
	st.history = append([]models.LocationReport{report}, st.history...)
	if len(st.history) > r.historyCap {
		st.history = st.history[:r.historyCap]
	}
	return nil
}

// GetHistory returns up to limit entries, most recent first
func (r *MemoryLocationRepo) GetHistory(_ context.Context, truckID string, limit int) ([]models.LocationReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, exists := r.state[truckID]
	if !exists {
		return nil, nil
	}

	n := len(st.history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.LocationReport, n)
	copy(out, st.history[:n])
	return out, nil
}

// GetSession returns the live tracking session, or nil when unset
func (r *MemoryLocationRepo) GetSession(_ context.Context, truckID string) (*models.LiveTrackingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, exists := r.state[truckID]
	if !exists || st.session == nil {
		return nil, nil
	}
	cp := *st.session
	return &cp, nil
}

// SaveSession stores the live tracking session state
func (r *MemoryLocationRepo) SaveSession(_ context.Context, session *models.LiveTrackingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *session
	r.truckState(session.TruckID).session = &cp
	return nil
}

// NearbyTrucks scans accepted current locations with the Haversine formula
func (r *MemoryLocationRepo) NearbyTrucks(_ context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	origin := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	var results []models.NearbyTruck
	for truckID, st := range r.state {
		if st.current == nil {
			continue
		}
		if _, indexed := r.geo[truckID]; !indexed {
			continue
		}
		point := utils.GeoPoint{Latitude: st.current.Latitude, Longitude: st.current.Longitude}
		dist := utils.CalculateDistance(origin, point)
		if dist <= radiusKm {
			results = append(results, models.NearbyTruck{
				TruckID:    truckID,
				Latitude:   st.current.Latitude,
				Longitude:  st.current.Longitude,
				DistanceKm: dist,
				Geohash:    utils.EncodePoint(point, 6),
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, nil
}

// RemoveFromGeo drops the truck from the geo index. The next accepted
// location puts it back.
func (r *MemoryLocationRepo) RemoveFromGeo(_ context.Context, truckID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.geo, truckID)
	return nil
}

// MemoryTruckRepo is a map-backed TruckRepo for tests and demo mode.
type MemoryTruckRepo struct {
	mu     sync.RWMutex
	trucks map[string]*models.Truck
}

// NewMemoryTruckRepository creates an in-memory truck repository
func NewMemoryTruckRepository() *MemoryTruckRepo {
	return &MemoryTruckRepo{trucks: make(map[string]*models.Truck)}
}

// Seed registers a truck
func (r *MemoryTruckRepo) Seed(truck *models.Truck) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *truck
	r.trucks[truck.ID] = &cp
}

// GetTruck returns the truck projection
func (r *MemoryTruckRepo) GetTruck(_ context.Context, truckID string) (*models.Truck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	truck, exists := r.trucks[truckID]
	if !exists {
		return nil, fmt.Errorf("%w: truck %s", tracking.ErrNotFound, truckID)
	}
	cp := *truck
	return &cp, nil
}

// IsOwner reports whether userID owns truckID
func (r *MemoryTruckRepo) IsOwner(_ context.Context, userID, truckID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	truck, exists := r.trucks[truckID]
	if !exists {
		return false, fmt.Errorf("%w: truck %s", tracking.ErrNotFound, truckID)
	}
	return truck.OwnerID == userID, nil
}

// SetActive flips the truck-level active flag
func (r *MemoryTruckRepo) SetActive(_ context.Context, truckID string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	truck, exists := r.trucks[truckID]
	if !exists {
		return fmt.Errorf("%w: truck %s", tracking.ErrNotFound, truckID)
	}
	truck.IsActive = active
	return nil
}
