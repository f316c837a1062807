package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/curbsidelabs/trucktrack/internal/pkg/middleware"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/curbsidelabs/trucktrack/services/tracking/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.ContextUserID, userID)
	}
	return c, rec
}

func TestOwnerCheckinAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().IsOwner(gomock.Any(), "owner-1", "truck-1").Return(true, nil)
	uc.EXPECT().SubmitReport(gomock.Any(), "truck-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, report *models.LocationReport) (models.SubmitResult, error) {
			assert.Equal(t, models.SourceOwner, report.Source)
			assert.Equal(t, models.ConfidenceHigh, report.Confidence)
			return models.SubmitResult{Accepted: true}, nil
		})

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/trucks/truck-1/checkin",
		`{"latitude":37.7749,"longitude":-122.4194,"address":"123 Market St"}`, "owner-1")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.OwnerCheckin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accepted":true`)
}

func TestOwnerCheckinForbiddenForNonOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().IsOwner(gomock.Any(), "owner-2", "truck-1").Return(false, nil)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/trucks/truck-1/checkin",
		`{"latitude":37.7749,"longitude":-122.4194}`, "owner-2")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.OwnerCheckin(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCustomerReportPendingVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().SubmitReport(gomock.Any(), "truck-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, report *models.LocationReport) (models.SubmitResult, error) {
			assert.Equal(t, models.SourceCustomer, report.Source)
			assert.Equal(t, "customer-9", report.ReportedBy)
			return models.SubmitResult{Accepted: false, RequiresVerification: true}, nil
		})

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/trucks/truck-1/location/report",
		`{"latitude":37.8044,"longitude":-122.2712}`, "customer-9")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.CustomerReport(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requires_verification":true`)
}

func TestCustomerReportForbiddenByPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().SubmitReport(gomock.Any(), "truck-1", gomock.Any()).Return(
		models.SubmitResult{}, fmt.Errorf("%w: customer reports are disabled for this truck", tracking.ErrForbidden))

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/trucks/truck-1/location/report",
		`{"latitude":37.8044,"longitude":-122.2712}`, "customer-9")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.CustomerReport(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSocialUpdateRejectsUnknownPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/internal/trucks/truck-1/social",
		`{"platform":"myspace","latitude":37.7749,"longitude":-122.4194}`, "")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.SocialUpdate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSocialUpdateRejectsUnknownConfidence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/internal/trucks/truck-1/location/social",
		`{"platform":"instagram","latitude":37.7749,"longitude":-122.4194,"confidence":"certain"}`, "")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.SocialUpdate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminOverrideRejectsUnknownConfidence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/trucks/truck-1/location/override",
		`{"latitude":37.7749,"longitude":-122.4194,"confidence":"certain"}`, "admin-1")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.AdminOverride(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSocialUpdateAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().SubmitReport(gomock.Any(), "truck-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, report *models.LocationReport) (models.SubmitResult, error) {
			assert.Equal(t, models.SourceInstagram, report.Source)
			return models.SubmitResult{Accepted: true}, nil
		})

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/internal/trucks/truck-1/social",
		`{"platform":"instagram","latitude":37.7749,"longitude":-122.4194,"address":"Dolores Park"}`, "")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.SocialUpdate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartTrackingConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().IsOwner(gomock.Any(), "owner-1", "truck-1").Return(true, nil)
	uc.EXPECT().StartTracking(gomock.Any(), "truck-1").Return("",
		fmt.Errorf("%w: live tracking already active for truck truck-1", tracking.ErrConflict))

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/trucks/truck-1/tracking/start", "", "owner-1")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.StartTracking(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCurrentLocationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().GetCurrentLocation(gomock.Any(), "truck-1").Return(nil,
		fmt.Errorf("%w: truck truck-1 has no reported location", tracking.ErrNotFound))

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodGet, "/trucks/truck-1/location", "", "")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.GetCurrentLocation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLocationState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().GetLocationState(gomock.Any(), "truck-1").Return(&models.TruckLocationState{
		TruckID: "truck-1",
		Current: &models.LocationReport{
			Source:    models.SourceOwner,
			Latitude:  37.7749,
			Longitude: -122.4194,
		},
		History: []models.LocationReport{
			{Source: models.SourceOwner, Latitude: 37.7749, Longitude: -122.4194},
		},
	}, nil)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodGet, "/trucks/truck-1/location/state", "", "")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.GetLocationState(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"truck_id":"truck-1"`)
	assert.Contains(t, rec.Body.String(), `"history"`)
}

func TestNearbyTrucksRequiresParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodGet, "/trucks/nearby?lat=37.7", "", "")

	require.NoError(t, h.NearbyTrucks(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearbyTrucksReturnsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().NearbyTrucks(gomock.Any(), 37.7749, -122.4194, 5.0).Return([]models.NearbyTruck{
		{TruckID: "truck-1", Latitude: 37.7955, Longitude: -122.3937, DistanceKm: 2.3},
	}, nil)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodGet, "/trucks/nearby?lat=37.7749&lng=-122.4194&radius_km=5", "", "")

	require.NoError(t, h.NearbyTrucks(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "truck-1")
}

func TestSetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	uc.EXPECT().IsOwner(gomock.Any(), "owner-1", "truck-1").Return(true, nil)
	uc.EXPECT().SetTruckStatus(gomock.Any(), "truck-1", false).Return(nil)

	h := NewTrackingHandler(uc)
	c, rec := newTestContext(http.MethodPut, "/trucks/truck-1/status", `{"is_active":false}`, "owner-1")
	c.SetParamNames("id")
	c.SetParamValues("truck-1")

	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
