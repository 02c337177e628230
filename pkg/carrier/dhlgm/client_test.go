package dhlgm_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/carrier/dhlgm"
	"tracker/pkg/credentials"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"
	mocktimezone "tracker/pkg/timezone/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
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

func newClient(t *testing.T, status int, body string) *dhlgm.Client {
	t.Helper()
	client := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/auth/v4/accesstoken" {
			return jsonResponse(http.StatusOK, `{"access_token":"tok","token_type":"Bearer","expires_in":3600}`), nil
		}
		require.Equal(t, "/tracking/v4/package", r.URL.Path)
		require.Equal(t, "GM2951173225174494", r.URL.Query().Get("trackingId"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		return jsonResponse(status, body), nil
	})}

	ctrl := gomock.NewController(t)
	geocoder := mocktimezone.NewMockGeocoder(ctrl)
	geocoder.EXPECT().Geocode(gomock.Any(), "ATLANTA, GA US").Return(timezone.Locality{
		City: "Atlanta", State: "GA", Country: "US", Timezone: "America/New_York",
	}, nil).AnyTimes()
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).
		Return(timezone.Locality{}, serrors.KindOnly(serrors.ErrNotFound)).AnyTimes()

	return dhlgm.New(client, credentials.NewMemory(credentials.Options{}), timezone.NewResolver(geocoder, 0), dhlgm.Options{
		BaseURL: "https://dhlgm.test", ClientID: "id", ClientSecret: "secret",
	})
}

func TestTrack(t *testing.T) {
	body := `{"packages":[{
		"package":{"dhlPackageId":"GM2951173225174494","trackingId":"9400111899223197428701","expectedDelivery":"2024-03-07"},
		"events":[
			{"date":"2024-03-06","time":"14:20:00","timeZone":"ET","primaryEventId":600,
			 "primaryEventDescription":"DELIVERED","location":"Atlanta, GA US","postalCode":"30303","country":"US"},
			{"date":"2024-03-05","time":"07:30:00","timeZone":"CT","primaryEventId":260,
			 "primaryEventDescription":"PROCESSED","secondaryEventDescription":"ARRIVAL DHL ECOMMERCE FACILITY",
			 "location":"DHL eCommerce - Memphis","country":"US"},
			{"date":"2024-03-04","time":"18:00:00","timeZone":"PT","primaryEventId":220,
			 "primaryEventDescription":"PICKED UP","location":"DHL GLOBAL MAIL","country":"US"}
		]
	}]}`

	c := newClient(t, http.StatusOK, body)
	require.Equal(t, domain.CarrierDHLGM, c.Carrier())

	res, err := c.Track(context.Background(), "gm2951173225174494", carrier.Options{})
	require.NoError(t, err)
	require.Equal(t, "GM2951173225174494", res.TrackingNumber)
	require.Len(t, res.Events, 3)

	// 18:00 PST
	require.Equal(t, time.Date(2024, 3, 5, 2, 0, 0, 0, time.UTC), res.Events[0].Timestamp)
	require.Equal(t, "220", res.Events[0].Code)
	require.Equal(t, &domain.Address{Country: "US"}, res.Events[0].Address)

	// 07:30 CST
	require.Equal(t, time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC), res.Events[1].Timestamp)
	require.Equal(t, "ARRIVAL DHL ECOMMERCE FACILITY", res.Events[1].Details)
	require.Equal(t, &domain.Address{Country: "US"}, res.Events[1].Address)

	require.Equal(t, &domain.Address{City: "Atlanta", State: "GA", Zip: "30303", Country: "US"}, res.Events[2].Address)
	require.Equal(t, time.Date(2024, 3, 6, 19, 20, 0, 0, time.UTC), *res.DeliveredAt)
	require.Equal(t, time.Date(2024, 3, 5, 2, 0, 0, 0, time.UTC), *res.ShippedAt)
	require.Equal(t, time.Date(2024, 3, 7, 5, 0, 0, 0, time.UTC), res.EstimatedDeliveryWindow.Earliest)
}

func TestTrack_NotFound(t *testing.T) {
	for _, tt := range []struct {
		status int
		body   string
	}{
		{status: http.StatusNotFound, body: `{"type":"https://api.dhlecs.com/docs/errors/404","title":"Not Found"}`},
		{status: http.StatusOK, body: `{"packages":[]}`},
	} {
		res, err := newClient(t, tt.status, tt.body).Track(context.Background(), "GM2951173225174494", carrier.Options{})
		require.NoError(t, err)
		require.NotNil(t, res.Events)
		require.Empty(t, res.Events)
	}
}

func TestTrack_Unavailable(t *testing.T) {
	_, err := newClient(t, http.StatusBadGateway, `upstream error`).
		Track(context.Background(), "GM2951173225174494", carrier.Options{})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
