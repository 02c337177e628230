package upsmi_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/carrier/ups"
	"tracker/pkg/carrier/upsmi"
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

func response(status int, contentType, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const trackBody = `<?xml version="1.0" encoding="UTF-8"?>
<TrackingResponse>
  <Package>
    <TrackingNumber>MI123456ABC123</TrackingNumber>
    <ScheduledDeliveryDate>03/07/2024</ScheduledDeliveryDate>
    <Events>
      <Event><Date>03/06/2024</Date><Time>14:20</Time><Code>D1</Code><Description>Delivered</Description>
        <Location>UPS Mail Innovations Chicago, IL US</Location><PostalCode>60601</PostalCode><Country>US</Country></Event>
      <Event><Date>03/05/2024</Date><Time>07:30</Time><Code>IT</Code><Description>In Transit</Description>
        <Location>Somewhere Else</Location><Country>US</Country></Event>
      <Event><Date>03/04/2024</Date><Time>18:00</Time><Code>MP</Code><Description>Package received</Description>
        <Location>UPS MI</Location></Event>
    </Events>
  </Package>
</TrackingResponse>`

type fixture struct {
	tokenCalls atomic.Int32
	trackBody  string
	httpClient *http.Client
	cache      credentials.Cache
}

func newFixture(t *testing.T, body string) *fixture {
	t.Helper()
	f := &fixture{trackBody: body, cache: credentials.NewMemory(credentials.Options{})}
	f.httpClient = &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		switch r.URL.Path {
		case "/security/v1/oauth/token":
			f.tokenCalls.Add(1)

			return response(http.StatusOK, "application/json", `{"access_token":"tok","token_type":"Bearer","expires_in":14399}`), nil
		case "/api/mi/v1/tracking":
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			b, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.Contains(t, string(b), "<TrackingNumber>MI123456ABC123</TrackingNumber>")

			return response(http.StatusOK, "application/xml", f.trackBody), nil
		case "/api/track/v1/details/1Z999AA10123456784":
			return response(http.StatusOK, "application/json", `{"trackResponse":{"shipment":[]}}`), nil
		}
		t.Fatalf("unexpected request to %s", r.URL)

		return nil, nil
	})}

	return f
}

func newResolver(t *testing.T) *timezone.Resolver {
	t.Helper()
	ctrl := gomock.NewController(t)
	geocoder := mocktimezone.NewMockGeocoder(ctrl)
	geocoder.EXPECT().Geocode(gomock.Any(), "CHICAGO, IL US").Return(timezone.Locality{
		City: "Chicago", State: "IL", Country: "US", Timezone: "America/Chicago",
	}, nil).AnyTimes()
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).
		Return(timezone.Locality{}, serrors.KindOnly(serrors.ErrNotFound)).AnyTimes()

	return timezone.NewResolver(geocoder, 0)
}

func TestTrack(t *testing.T) {
	f := newFixture(t, trackBody)
	c := upsmi.New(f.httpClient, f.cache, newResolver(t), upsmi.Options{BaseURL: "https://ups.test"})
	require.Equal(t, domain.CarrierUPSMI, c.Carrier())
	require.Equal(t, "upsmi", c.Provider())

	res, err := c.Track(context.Background(), "MI123456ABC123", carrier.Options{})
	require.NoError(t, err)
	require.Equal(t, "application/xml", res.Raw.ContentType)
	require.Len(t, res.Events, 3)

	require.Equal(t, time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC), res.Events[0].Timestamp)
	require.Nil(t, res.Events[0].Address)

	require.Equal(t, &domain.Address{Country: "US"}, res.Events[1].Address)
	require.Equal(t, time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC), res.Events[1].Timestamp)

	require.Equal(t, &domain.Address{City: "Chicago", State: "IL", Zip: "60601", Country: "US"}, res.Events[2].Address)
	require.Equal(t, time.Date(2024, 3, 6, 20, 20, 0, 0, time.UTC), *res.DeliveredAt)
	require.Equal(t, time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC), *res.ShippedAt)
	require.NotNil(t, res.EstimatedDeliveryWindow)
}

func TestTrack_SharesUPSToken(t *testing.T) {
	f := newFixture(t, trackBody)
	resolver := newResolver(t)

	_, err := ups.New(f.httpClient, f.cache, resolver, ups.Options{BaseURL: "https://ups.test"}).
		Track(context.Background(), "1Z999AA10123456784", carrier.Options{})
	require.NoError(t, err)
	_, err = upsmi.New(f.httpClient, f.cache, resolver, upsmi.Options{BaseURL: "https://ups.test"}).
		Track(context.Background(), "MI123456ABC123", carrier.Options{})
	require.NoError(t, err)

	require.EqualValues(t, 1, f.tokenCalls.Load())
}

func TestTrack_Errors(t *testing.T) {
	notFound := `<TrackingResponse><Error><Code>TW0001</Code><Description>No tracking information available</Description></Error></TrackingResponse>`
	res, err := upsmi.New(newFixture(t, notFound).httpClient, credentials.NewMemory(credentials.Options{}), newResolver(t),
		upsmi.Options{BaseURL: "https://ups.test"}).Track(context.Background(), "MI123456ABC123", carrier.Options{})
	require.NoError(t, err)
	require.NotNil(t, res.Events)
	require.Empty(t, res.Events)

	invalid := `<TrackingResponse><Error><Code>TW0002</Code><Description>Invalid tracking number</Description></Error></TrackingResponse>`
	_, err = upsmi.New(newFixture(t, invalid).httpClient, credentials.NewMemory(credentials.Options{}), newResolver(t),
		upsmi.Options{BaseURL: "https://ups.test"}).Track(context.Background(), "MI123456ABC123", carrier.Options{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
