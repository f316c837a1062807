package models

// DefaultHistoryCap bounds the per-truck location history audit log.
const DefaultHistoryCap = 100

// TruckPreferences holds the per-truck gating for untrusted reports.
type TruckPreferences struct {
	AllowCustomerReports        bool `json:"allow_customer_reports" db:"allow_customer_reports"`
	RequireLocationVerification bool `json:"require_location_verification" db:"require_location_verification"`
}

// DefaultTruckPreferences matches trucks that never configured gating:
// customer reports are allowed and applied without verification.
func DefaultTruckPreferences() TruckPreferences {
	return TruckPreferences{
		AllowCustomerReports:        true,
		RequireLocationVerification: false,
	}
}

// Truck is the projection of the truck aggregate this core needs:
// ownership, display name, active flag and tracking preferences.
// CRUD over the full aggregate lives in the marketplace service.
type Truck struct {
	ID          string           `json:"id" db:"id"`
	OwnerID     string           `json:"owner_id" db:"owner_id"`
	Name        string           `json:"name" db:"name"`
	IsActive    bool             `json:"is_active" db:"is_active"`
	Preferences TruckPreferences `json:"preferences"`
}

// TruckLocationState is the per-truck tracking aggregate: the accepted
// current location plus a bounded, most-recent-first audit history.
type TruckLocationState struct {
	TruckID string           `json:"truck_id"`
	Current *LocationReport  `json:"current,omitempty"`
	History []LocationReport `json:"history"`
}

// NearbyTruck is one result of a geo query over accepted locations.
type NearbyTruck struct {
	TruckID    string  `json:"truck_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash,omitempty"`
}
