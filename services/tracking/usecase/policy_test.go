package usecase

import (
	"testing"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDecideReport(t *testing.T) {
	existing := &models.LocationReport{
		Source:    models.SourceOwner,
		Latitude:  37.7749,
		Longitude: -122.4194,
	}
	openPrefs := models.DefaultTruckPreferences()
	verifyPrefs := models.TruckPreferences{
		AllowCustomerReports:        true,
		RequireLocationVerification: true,
	}
	closedPrefs := models.TruckPreferences{
		AllowCustomerReports: false,
	}

	tests := []struct {
		name    string
		current *models.LocationReport
		source  models.ReportSource
		prefs   models.TruckPreferences
		want    decision
	}{
		{
			name:    "first report always accepted",
			current: nil,
			source:  models.SourceCustomer,
			prefs:   closedPrefs,
			want:    decisionAccept,
		},
		{
			name:    "owner replaces current",
			current: existing,
			source:  models.SourceOwner,
			prefs:   openPrefs,
			want:    decisionAccept,
		},
		{
			name:    "live gps replaces current",
			current: existing,
			source:  models.SourceLiveGPS,
			prefs:   openPrefs,
			want:    decisionAccept,
		},
		{
			name:    "admin override unconditional",
			current: existing,
			source:  models.SourceAdmin,
			prefs:   closedPrefs,
			want:    decisionAccept,
		},
		{
			name:    "customer accepted when allowed",
			current: existing,
			source:  models.SourceCustomer,
			prefs:   openPrefs,
			want:    decisionAccept,
		},
		{
			name:    "customer recorded when verification required",
			current: existing,
			source:  models.SourceCustomer,
			prefs:   verifyPrefs,
			want:    decisionRecordOnly,
		},
		{
			name:    "customer forbidden when reports disabled",
			current: existing,
			source:  models.SourceCustomer,
			prefs:   closedPrefs,
			want:    decisionForbidden,
		},
		{
			name:    "instagram trusted as owner channel",
			current: existing,
			source:  models.SourceInstagram,
			prefs:   closedPrefs,
			want:    decisionAccept,
		},
		{
			name:    "manual source accepted",
			current: existing,
			source:  models.SourceManual,
			prefs:   openPrefs,
			want:    decisionAccept,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incoming := &models.LocationReport{
				Source:    tt.source,
				Latitude:  37.8044,
				Longitude: -122.2712,
			}
			got := decideReport(tt.current, incoming, tt.prefs)
			assert.Equal(t, tt.want, got)
		})
	}
}
