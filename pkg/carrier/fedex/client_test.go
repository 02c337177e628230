package fedex_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/carrier/fedex"
	"tracker/pkg/credentials"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newClient(t *testing.T, status int, body string) *fedex.Client {
	t.Helper()
	client := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/oauth/token" {
			require.NoError(t, r.ParseForm())
			require.Equal(t, "id", r.PostForm.Get("client_id"))

			return jsonResponse(http.StatusOK, `{"access_token":"tok","token_type":"bearer","expires_in":3599}`), nil
		}
		require.Equal(t, "/track/v1/trackingnumbers", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, true, in["includeDetailedScans"])

		return jsonResponse(status, body), nil
	})}

	return fedex.New(client, credentials.NewMemory(credentials.Options{}), fedex.Options{
		BaseURL: "https://fedex.test", ClientID: "id", ClientSecret: "secret",
	})
}

func TestTrack(t *testing.T) {
	body := `{"output":{"completeTrackResults":[{"trackingNumber":"123456789012","trackResults":[{
		"scanEvents":[
			{"date":"2024-03-06T14:20:00-05:00","eventType":"DL","eventDescription":"Delivered",
			 "scanLocation":{"city":"NEW YORK","stateOrProvinceCode":"NY","postalCode":"10001","countryCode":"US"}},
			{"date":"2024-03-05T07:30:00-06:00","eventType":"IT","eventDescription":"On the way",
			 "exceptionDescription":"Weather delay","scanLocation":{"city":"MEMPHIS","stateOrProvinceCode":"TN","countryCode":"US"}},
			{"date":"2024-03-04T18:00:00-05:00","eventType":"PU","eventDescription":"Picked up","scanLocation":{}}
		],
		"estimatedDeliveryTimeWindow":{"window":{}}
	}]}]}}`

	c := newClient(t, http.StatusOK, body)
	require.Equal(t, domain.CarrierFedEx, c.Carrier())

	res, err := c.Track(context.Background(), "9860 5472 9602", carrier.Options{})
	require.NoError(t, err)
	require.Equal(t, "123456789012", res.TrackingNumber)
	require.Len(t, res.Events, 3)

	require.Equal(t, "Picked up", res.Events[0].Description)
	require.Equal(t, time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC), res.Events[0].Timestamp)
	require.Nil(t, res.Events[0].Address)

	require.Equal(t, "Weather delay", res.Events[1].Details)
	require.Equal(t, time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC), res.Events[1].Timestamp)

	require.Equal(t, "DL", res.Events[2].Code)
	require.Equal(t, time.Date(2024, 3, 6, 19, 20, 0, 0, time.UTC), *res.DeliveredAt)
	require.Equal(t, time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC), *res.ShippedAt)
	require.Nil(t, res.EstimatedDeliveryWindow)
}

func TestTrack_Window(t *testing.T) {
	body := `{"output":{"completeTrackResults":[{"trackResults":[{
		"scanEvents":[],
		"estimatedDeliveryTimeWindow":{"window":{"begins":"2024-03-07T09:00:00-05:00","ends":"2024-03-07T13:00:00-05:00"}}
	}]}]}}`

	res, err := newClient(t, http.StatusOK, body).Track(context.Background(), "123456789012", carrier.Options{})
	require.NoError(t, err)
	require.Empty(t, res.Events)
	require.False(t, res.Delivered())
	require.Equal(t, &domain.DeliveryWindow{
		Earliest: time.Date(2024, 3, 7, 14, 0, 0, 0, time.UTC),
		Latest:   time.Date(2024, 3, 7, 18, 0, 0, 0, time.UTC),
	}, res.EstimatedDeliveryWindow)
}

func TestTrack_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "inline error",
			status: http.StatusOK,
			body: `{"output":{"completeTrackResults":[{"trackResults":[{"error":{
				"code":"TRACKING.TRACKINGNUMBER.NOTFOUND","message":"Tracking number cannot be found."}}]}]}}`,
		},
		{
			name:   "error envelope",
			status: http.StatusNotFound,
			body:   `{"errors":[{"code":"TRACKING.TRACKINGNUMBER.NOTFOUND","message":"Tracking number cannot be found."}]}`,
		},
		{
			name:   "no results",
			status: http.StatusOK,
			body:   `{"output":{"completeTrackResults":[]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newClient(t, tt.status, tt.body).Track(context.Background(), "123456789012", carrier.Options{})
			require.NoError(t, err)
			require.NotNil(t, res.Events)
			require.Empty(t, res.Events)
			require.NotEmpty(t, res.Raw.Body)
		})
	}
}

func TestTrack_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   serrors.Kind
	}{
		{
			name:   "inline error",
			status: http.StatusOK,
			body:   `{"output":{"completeTrackResults":[{"trackResults":[{"error":{"code":"TRACKING.TRACKINGNUMBER.INVALID"}}]}]}}`,
			kind:   serrors.ErrBadRequest,
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"errors":[{"code":"RATE.LIMIT.EXCEEDED"}]}`,
			kind:   serrors.ErrRateLimited,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"errors":[{"code":"INTERNAL.SERVER.ERROR"}]}`,
			kind:   serrors.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newClient(t, tt.status, tt.body).Track(context.Background(), "123456789012", carrier.Options{})
			require.ErrorIs(t, err, tt.kind)
		})
	}
}
