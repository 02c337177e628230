package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tracker/internal/api/handler/v1handler"
	"tracker/internal/tracker"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"

	mocktracker "tracker/internal/tracker/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*mocktracker.MockTracker, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tr := mocktracker.NewMockTracker(ctrl)

	return tr, v1handler.New(v1handler.Deps{Tracker: tr}).Routes()
}

func TestTrack_OK(t *testing.T) {
	tr, h := newTestRouter(t)
	delivered := time.Date(2024, 3, 5, 18, 4, 0, 0, time.UTC)

	tr.EXPECT().Track(gomock.Any(), tracker.Request{
		TrackingNumber: "9400111899223197428701",
		Carrier:        "usps",
		MinDate:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Return(&domain.TrackResult{
		Carrier:        domain.CarrierUSPS,
		Provider:       "usps",
		TrackingNumber: "9400111899223197428701",
		Events: []domain.ShipmentEvent{
			{Timestamp: delivered, Description: "Delivered", Code: "01"},
		},
		ShippedAt:   &delivered,
		DeliveredAt: &delivered,
		Raw:         domain.Raw{ContentType: "application/json", Body: []byte(`{"ok":true}`)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/track/9400111899223197428701?carrier=usps&minDate=2024-01-01T00:00:00Z", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "usps", body["carrier"])
	require.Equal(t, "2024-03-05T18:04:00Z", body["deliveredAt"])
	require.Equal(t, map[string]any{"ok": true}, body["raw"])
	require.Len(t, body["events"], 1)
}

func TestTrack_InvalidMinDate(t *testing.T) {
	_, h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track/1Z999AA10123456784?minDate=yesterday", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body v1handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, serrors.ErrBadRequest.Error(), body.Code)
}

func TestTrack_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: serrors.With(serrors.ErrBadRequest, "tracking number matches no known carrier"), status: http.StatusBadRequest},
		{err: serrors.With(serrors.ErrUnauthorized, "status 401"), status: http.StatusBadGateway},
		{err: serrors.With(serrors.ErrTimeout, "deadline exceeded"), status: http.StatusGatewayTimeout},
		{err: serrors.With(serrors.ErrUnavailable, "status 503"), status: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			tr, h := newTestRouter(t)
			tr.EXPECT().Track(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track/1Z999AA10123456784", nil))
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestIdentify(t *testing.T) {
	tr, h := newTestRouter(t)
	tr.EXPECT().Identify("420944019261299999877816190127").
		Return([]domain.Carrier{domain.CarrierUSPS, domain.CarrierDHLGM, domain.CarrierUPSMI})
	tr.EXPECT().Identify("NOPE").Return(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/identify/420944019261299999877816190127", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"trackingNumber":"420944019261299999877816190127","carriers":["usps","dhlgm","upsmi"]}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/identify/nope", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"trackingNumber":"NOPE","carriers":[]}`, rec.Body.String())
}
