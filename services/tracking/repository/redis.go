package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/constants"
	"github.com/curbsidelabs/trucktrack/internal/pkg/database"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/internal/utils"
)

// RedisLocationRepo implements tracking.LocationRepo on Redis: current
// location as a hash, history as a capped list, session as a hash and
// a geo set of accepted positions for nearby queries.
type RedisLocationRepo struct {
	redisClient *database.RedisClient
	historyCap  int64
	locationTTL time.Duration
}

// NewRedisLocationRepository creates a new Redis-backed location repository
func NewRedisLocationRepository(redisClient *database.RedisClient, cfg models.TrackingConfig) *RedisLocationRepo {
	cap := int64(cfg.HistoryCap)
	if cap <= 0 {
		cap = models.DefaultHistoryCap
	}
	ttl := time.Duration(cfg.LocationTTLHours) * time.Hour
	if ttl <= 0 {
		// Stale trucks age out of the live view after a day.
		ttl = 24 * time.Hour
	}
	return &RedisLocationRepo{
		redisClient: redisClient,
		historyCap:  cap,
		locationTTL: ttl,
	}
}

// GetCurrent returns the accepted current location, or nil when unset
func (r *RedisLocationRepo) GetCurrent(ctx context.Context, truckID string) (*models.LocationReport, error) {
	key := fmt.Sprintf(constants.KeyTruckLocation, truckID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get location data: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	return reportFromHash(values)
}

// SetCurrent replaces the accepted current location and refreshes the
// geo index entry.
func (r *RedisLocationRepo) SetCurrent(ctx context.Context, truckID string, report *models.LocationReport) error {
	key := fmt.Sprintf(constants.KeyTruckLocation, truckID)

	if err := r.redisClient.HSet(ctx, key, reportToHash(report)); err != nil {
		return fmt.Errorf("failed to store current location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, r.locationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyTrucksGeo, report.Longitude, report.Latitude, truckID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	return nil
}

// AppendHistory prepends a report to the capped history list
func (r *RedisLocationRepo) AppendHistory(ctx context.Context, truckID string, report models.LocationReport) error {
	key := fmt.Sprintf(constants.KeyLocationHistory, truckID)

	entry, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if err := r.redisClient.LPush(ctx, key, entry); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	if err := r.redisClient.LTrim(ctx, key, 0, r.historyCap-1); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, r.locationTTL); err != nil {
		return fmt.Errorf("failed to set history TTL: %w", err)
	}

	return nil
}

// GetHistory returns up to limit entries, most recent first
func (r *RedisLocationRepo) GetHistory(ctx context.Context, truckID string, limit int) ([]models.LocationReport, error) {
	key := fmt.Sprintf(constants.KeyLocationHistory, truckID)

	stop := int64(limit) - 1
	if limit <= 0 {
		stop = r.historyCap - 1
	}

	entries, err := r.redisClient.LRange(ctx, key, 0, stop)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	reports := make([]models.LocationReport, 0, len(entries))
	for _, entry := range entries {
		var report models.LocationReport
		if err := json.Unmarshal([]byte(entry), &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// GetSession returns the live tracking session, or nil when unset
func (r *RedisLocationRepo) GetSession(ctx context.Context, truckID string) (*models.LiveTrackingSession, error) {
	key := fmt.Sprintf(constants.KeyTruckSession, truckID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get session data: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	session := &models.LiveTrackingSession{
		TruckID:   truckID,
		SessionID: values[constants.FieldSessionID],
	}
	session.IsActive, _ = strconv.ParseBool(values[constants.FieldIsActive])
	if ts, err := strconv.ParseInt(values[constants.FieldStartTime], 10, 64); err == nil {
		session.StartTime = time.Unix(ts, 0)
	}
	if ts, err := strconv.ParseInt(values[constants.FieldEndTime], 10, 64); err == nil && ts > 0 {
		session.EndTime = time.Unix(ts, 0)
	}

	return session, nil
}

// SaveSession stores the live tracking session state
func (r *RedisLocationRepo) SaveSession(ctx context.Context, session *models.LiveTrackingSession) error {
	key := fmt.Sprintf(constants.KeyTruckSession, session.TruckID)

	var endTime int64
	if !session.EndTime.IsZero() {
		endTime = session.EndTime.Unix()
	}
	sessionData := map[string]interface{}{
		constants.FieldSessionID: session.SessionID,
		constants.FieldIsActive:  strconv.FormatBool(session.IsActive),
		constants.FieldStartTime: strconv.FormatInt(session.StartTime.Unix(), 10),
		constants.FieldEndTime:   strconv.FormatInt(endTime, 10),
	}

	if err := r.redisClient.HSet(ctx, key, sessionData); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// NearbyTrucks queries the geo set of accepted current locations
func (r *RedisLocationRepo) NearbyTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyTrucksGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	results := make([]models.NearbyTruck, 0, len(locations))
	for _, loc := range locations {
		results = append(results, models.NearbyTruck{
			TruckID:    loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
			Geohash:    utils.EncodePoint(utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude}, 6),
		})
	}
	return results, nil
}

// RemoveFromGeo drops a truck from the geo index
func (r *RedisLocationRepo) RemoveFromGeo(ctx context.Context, truckID string) error {
	if err := r.redisClient.ZRem(ctx, constants.KeyTrucksGeo, truckID); err != nil {
		return fmt.Errorf("failed to remove truck from geo index: %w", err)
	}
	return nil
}

// reportToHash flattens a report into Redis hash fields
func reportToHash(report *models.LocationReport) map[string]interface{} {
	return map[string]interface{}{
		constants.FieldSource:     string(report.Source),
		constants.FieldLatitude:   strconv.FormatFloat(report.Latitude, 'f', -1, 64),
		constants.FieldLongitude:  strconv.FormatFloat(report.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:   strconv.FormatFloat(report.Accuracy, 'f', -1, 64),
		constants.FieldAddress:    report.Address,
		constants.FieldCity:       report.City,
		constants.FieldState:      report.State,
		constants.FieldConfidence: string(report.Confidence),
		constants.FieldNotes:      report.Notes,
		constants.FieldReportedBy: report.ReportedBy,
		constants.FieldTimestamp:  strconv.FormatInt(report.Timestamp.Unix(), 10),
	}
}

// reportFromHash rebuilds a report from Redis hash fields
func reportFromHash(values map[string]string) (*models.LocationReport, error) {
	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	report := &models.LocationReport{
		Source:     models.ReportSource(values[constants.FieldSource]),
		Latitude:   lat,
		Longitude:  lng,
		Address:    values[constants.FieldAddress],
		City:       values[constants.FieldCity],
		State:      values[constants.FieldState],
		Confidence: models.Confidence(values[constants.FieldConfidence]),
		Notes:      values[constants.FieldNotes],
		ReportedBy: values[constants.FieldReportedBy],
	}
	if acc, err := strconv.ParseFloat(values[constants.FieldAccuracy], 64); err == nil {
		report.Accuracy = acc
	}
	if ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64); err == nil {
		report.Timestamp = time.Unix(ts, 0)
	}
	return report, nil
}
