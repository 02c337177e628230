// Package geocoder implements timezone.Geocoder with the Google Geocoding
// and Time Zone web APIs.
package geocoder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Google Maps platform host.
	DefaultBaseURL = "https://maps.googleapis.com"
	// DefaultRequestsPerSecond keeps well under the per-project quota.
	DefaultRequestsPerSecond = 10
)

// Options configure the geocoder.
type Options struct {
	BaseURL string
	APIKey  string
	// RequestsPerSecond limits outgoing requests. Both API calls of a lookup count.
	RequestsPerSecond float64
	// Burst defaults to 1.
	Burst int
	// Now defaults to time.Now. It picks the instant used for the time zone lookup.
	Now func() time.Time
}

// Geocoder resolves free-text locations remotely.
type Geocoder struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	options    Options
}

var _ timezone.Geocoder = (*Geocoder)(nil)

// New creates a Geocoder.
func New(httpClient *http.Client, options Options) *Geocoder {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if options.RequestsPerSecond <= 0 {
		options.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if options.Burst <= 0 {
		options.Burst = 1
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Geocoder{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(options.RequestsPerSecond), options.Burst),
		options:    options,
	}
}

// Geocode implements timezone.Geocoder.
func (g *Geocoder) Geocode(ctx context.Context, text string) (timezone.Locality, error) {
	q := url.Values{}
	q.Set("address", text)
	var geo geocodeResponse
	if err := g.get(ctx, "/maps/api/geocode/json", q, &geo); err != nil {
		return timezone.Locality{}, err
	}
	if err := statusError(geo.Status, geo.ErrorMessage); err != nil {
		return timezone.Locality{}, fmt.Errorf("could not geocode %q: %w", text, err)
	}
	if len(geo.Results) == 0 {
		return timezone.Locality{}, serrors.With(serrors.ErrNotFound, "no results for %q", text)
	}

	res := geo.Results[0]
	loc := components(res.AddressComponents)

	q = url.Values{}
	q.Set("location", strconv.FormatFloat(res.Geometry.Location.Lat, 'f', -1, 64)+","+
		strconv.FormatFloat(res.Geometry.Location.Lng, 'f', -1, 64))
	q.Set("timestamp", strconv.FormatInt(g.options.Now().Unix(), 10))
	var tz timezoneResponse
	if err := g.get(ctx, "/maps/api/timezone/json", q, &tz); err != nil {
		return timezone.Locality{}, err
	}
	if err := statusError(tz.Status, tz.ErrorMessage); err != nil {
		return timezone.Locality{}, fmt.Errorf("could not look up time zone of %q: %w", text, err)
	}
	loc.Timezone = tz.TimeZoneID

	return loc, nil
}

func (g *Geocoder) get(ctx context.Context, path string, q url.Values, v any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return serrors.Wrap(serrors.ErrTimeout, err, "rate limiter wait")
	}

	q.Set("key", g.options.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.options.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	resp, err := carrier.Do(g.httpClient, req)
	if err != nil {
		return fmt.Errorf("geocoder request: %w", err)
	}

	return carrier.DecodeJSON(resp, v)
}

// statusError maps the API status field onto serrors kinds.
func statusError(status, message string) error {
	switch status {
	case "OK":
		return nil
	case "ZERO_RESULTS":
		return serrors.With(serrors.ErrNotFound, "%s", status)
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		return serrors.With(serrors.ErrRateLimited, "%s: %s", status, message)
	case "REQUEST_DENIED":
		return serrors.With(serrors.ErrUnauthorized, "%s: %s", status, message)
	case "INVALID_REQUEST":
		return serrors.With(serrors.ErrBadRequest, "%s: %s", status, message)
	default:
		return serrors.With(serrors.ErrUnavailable, "%s: %s", status, message)
	}
}

func components(in []addressComponent) timezone.Locality {
	var out timezone.Locality
	for _, c := range in {
		switch {
		case slices.Contains(c.Types, "locality"):
			out.City = c.LongName
		case slices.Contains(c.Types, "postal_town") && out.City == "":
			out.City = c.LongName
		case slices.Contains(c.Types, "administrative_area_level_1"):
			out.State = c.ShortName
		case slices.Contains(c.Types, "postal_code"):
			out.Zip = c.ShortName
		case slices.Contains(c.Types, "country"):
			out.Country = c.ShortName
		}
	}

	return out
}
