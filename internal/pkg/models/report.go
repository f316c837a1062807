package models

import (
	"fmt"
	"time"
)

// ReportSource identifies the channel a location report arrived on.
type ReportSource string

const (
	SourceOwner     ReportSource = "owner"
	SourceLiveGPS   ReportSource = "live_gps"
	SourceCustomer  ReportSource = "customer"
	SourceInstagram ReportSource = "instagram"
	SourceFacebook  ReportSource = "facebook"
	SourceTwitter   ReportSource = "twitter"
	SourceAdmin     ReportSource = "admin"
	SourceManual    ReportSource = "manual"
)

// ParseReportSource validates a source string against the closed set.
func ParseReportSource(s string) (ReportSource, error) {
	switch ReportSource(s) {
	case SourceOwner, SourceLiveGPS, SourceCustomer, SourceInstagram,
		SourceFacebook, SourceTwitter, SourceAdmin, SourceManual:
		return ReportSource(s), nil
	}
	return "", fmt.Errorf("unknown report source: %q", s)
}

// IsSocial reports whether the source is a social-media channel.
func (s ReportSource) IsSocial() bool {
	return s == SourceInstagram || s == SourceFacebook || s == SourceTwitter
}

// Confidence is a coarse trust label derived from the report source.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence validates a confidence string against the closed set.
func ParseConfidence(s string) (Confidence, error) {
	switch Confidence(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return Confidence(s), nil
	}
	return "", fmt.Errorf("unknown confidence: %q", s)
}

// GPS accuracy thresholds in meters for confidence derivation.
const (
	GPSAccuracyHighMeters   = 10.0
	GPSAccuracyMediumMeters = 50.0
)

// ConfidenceForAccuracy derives confidence from a GPS accuracy radius.
func ConfidenceForAccuracy(accuracyMeters float64) Confidence {
	switch {
	case accuracyMeters < GPSAccuracyHighMeters:
		return ConfidenceHigh
	case accuracyMeters < GPSAccuracyMediumMeters:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// LocationReport is a single observation of a truck's position.
type LocationReport struct {
	Source     ReportSource `json:"source" db:"source"`
	Latitude   float64      `json:"latitude" db:"latitude"`
	Longitude  float64      `json:"longitude" db:"longitude"`
	Accuracy   float64      `json:"accuracy,omitempty" db:"accuracy"`
	Address    string       `json:"address,omitempty" db:"address"`
	City       string       `json:"city,omitempty" db:"city"`
	State      string       `json:"state,omitempty" db:"state"`
	Confidence Confidence   `json:"confidence" db:"confidence"`
	Notes      string       `json:"notes,omitempty" db:"notes"`
	ReportedBy string       `json:"reported_by,omitempty" db:"reported_by"`
	Timestamp  time.Time    `json:"timestamp" db:"timestamp"`
}

// Validate checks that the report carries a usable position.
// The (0,0) origin is the legacy "unset" sentinel and is never a valid
// truck position.
func (r *LocationReport) Validate() error {
	if r == nil {
		return fmt.Errorf("location report is required")
	}
	if r.Latitude == 0 && r.Longitude == 0 {
		return fmt.Errorf("coordinates are required")
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// HasCoordinates reports whether the report holds a non-sentinel position.
func (r *LocationReport) HasCoordinates() bool {
	return r != nil && !(r.Latitude == 0 && r.Longitude == 0)
}

// SubmitResult is the outcome of a location submission.
type SubmitResult struct {
	Accepted             bool `json:"accepted"`
	RequiresVerification bool `json:"requires_verification"`
}
