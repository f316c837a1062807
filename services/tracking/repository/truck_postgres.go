package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/jmoiron/sqlx"
)

// PostgresTruckRepo implements the tracking.TruckRepo interface over
// the marketplace's trucks table.
type PostgresTruckRepo struct {
	db *sqlx.DB
}

// NewTruckRepository creates a new truck repository
func NewTruckRepository(db *sqlx.DB) *PostgresTruckRepo {
	return &PostgresTruckRepo{db: db}
}

type truckRow struct {
	ID                          string `db:"id"`
	OwnerID                     string `db:"owner_id"`
	Name                        string `db:"name"`
	IsActive                    bool   `db:"is_active"`
	AllowCustomerReports        bool   `db:"allow_customer_reports"`
	RequireLocationVerification bool   `db:"require_location_verification"`
}

// GetTruck returns the truck projection this core needs
func (r *PostgresTruckRepo) GetTruck(ctx context.Context, truckID string) (*models.Truck, error) {
	var row truckRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, owner_id, name, is_active,
		       allow_customer_reports, require_location_verification
		FROM trucks
		WHERE id = $1
	`, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: truck %s", tracking.ErrNotFound, truckID)
		}
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	return &models.Truck{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Name:     row.Name,
		IsActive: row.IsActive,
		Preferences: models.TruckPreferences{
			AllowCustomerReports:        row.AllowCustomerReports,
			RequireLocationVerification: row.RequireLocationVerification,
		},
	}, nil
}

// IsOwner reports whether userID owns truckID
func (r *PostgresTruckRepo) IsOwner(ctx context.Context, userID, truckID string) (bool, error) {
	var owns bool
	err := r.db.GetContext(ctx, &owns, `
		SELECT EXISTS (
			SELECT 1 FROM trucks WHERE id = $1 AND owner_id = $2
		)
	`, truckID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check truck ownership: %w", err)
	}
	return owns, nil
}

// SetActive flips the truck-level active flag
func (r *PostgresTruckRepo) SetActive(ctx context.Context, truckID string, active bool) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE trucks
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
	`, active, truckID)
	if err != nil {
		return fmt.Errorf("failed to update truck status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: truck %s", tracking.ErrNotFound, truckID)
	}
	return nil
}
