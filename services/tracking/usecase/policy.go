package usecase

import "github.com/curbsidelabs/trucktrack/internal/pkg/models"

// decision is the reconciliation outcome for an incoming report.
type decision int

const (
	// decisionAccept replaces the current location.
	decisionAccept decision = iota
	// decisionRecordOnly appends to history without becoming current;
	// the submitter is told verification is pending.
	decisionRecordOnly
	// decisionForbidden rejects the report entirely.
	decisionForbidden
)

// decideReport is the reconciliation policy: given the truck's current
// accepted location, an incoming report and the truck's preferences,
// decide whether the report becomes authoritative.
//
// Trust model: the owner (and admin) is authoritative over the truck's
// position; social channels are keyed off the truck's own linked
// accounts and therefore owner-trusted; customers are the only
// untrusted-by-default reporters and are gated per truck.
func decideReport(current *models.LocationReport, incoming *models.LocationReport, prefs models.TruckPreferences) decision {
	// A truck that has never had a location takes any valid report.
	if current == nil {
		return decisionAccept
	}

	switch incoming.Source {
	case models.SourceAdmin:
		// Admin override is unconditional.
		return decisionAccept

	case models.SourceOwner, models.SourceLiveGPS:
		return decisionAccept

	case models.SourceCustomer:
		if !prefs.AllowCustomerReports {
			return decisionForbidden
		}
		if prefs.RequireLocationVerification {
			return decisionRecordOnly
		}
		return decisionAccept

	case models.SourceInstagram, models.SourceFacebook, models.SourceTwitter:
		return decisionAccept
	}

	// Manual/unspecified sources are accepted for backward
	// compatibility with legacy records.
	return decisionAccept
}
