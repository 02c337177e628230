// Package usps tracks USPS mail pieces through the USPS v3 Tracking API and
// the legacy Web Tools TrackV2 API.
package usps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"tracker/pkg/carrier"
	"tracker/pkg/credentials"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"

	"golang.org/x/oauth2"
)

const (
	// Provider names the v3 normalizer.
	Provider = "usps"
	// TokenKey is the credential cache key of the v3 API.
	TokenKey = "usps"
	// DefaultBaseURL is the production USPS API host.
	DefaultBaseURL = "https://apis.usps.com"
)

// Options configure the v3 client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// Client implements carrier.Normalizer for the USPS v3 Tracking API.
type Client struct {
	httpClient *http.Client
	cache      credentials.Cache
	resolver   *timezone.Resolver
	options    Options
}

var _ carrier.Normalizer = (*Client)(nil)

// New creates a USPS v3 client.
func New(httpClient *http.Client, cache credentials.Cache, resolver *timezone.Resolver, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, cache: cache, resolver: resolver, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the USPS carrier.
func (c *Client) Carrier() domain.Carrier { return domain.CarrierUSPS }

// Provider implements carrier.Normalizer. It names the v3 Tracking API in logs and metrics.
func (c *Client) Provider() string { return Provider }

// TrackingURL is the public tracking page for number.
func TrackingURL(number string) string {
	return "https://tools.usps.com/go/TrackConfirmAction?tLabels=" + url.QueryEscape(number)
}

func draft(provider, number string) carrier.Draft {
	return carrier.Draft{
		Carrier:        domain.CarrierUSPS,
		Provider:       provider,
		TrackingNumber: number,
		URL:            TrackingURL(number),
	}
}

func (c *Client) token(ctx context.Context) (string, error) {
	return c.cache.GetOrFetch(ctx, TokenKey, credentials.ClientCredentials(credentials.OAuthConfig{
		TokenURL:     c.options.BaseURL + "/oauth2/v3/token",
		ClientID:     c.options.ClientID,
		ClientSecret: c.options.ClientSecret,
		AuthStyle:    oauth2.AuthStyleInParams,
	}, c.httpClient))
}

// Track implements carrier.Normalizer.
func (c *Client) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(trackingNumber)

	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get usps token: %w", err)
	}

	endpoint := c.options.BaseURL + "/tracking/v3/tracking/" + url.PathEscape(number) + "?expand=DETAIL"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	d := draft(Provider, number)
	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			credentials.Invalidate(ctx, c.cache, TokenKey)
		}
		if errors.Is(err, serrors.ErrNotFound) {
			d.Raw = resp.Raw()

			return carrier.Empty(d), nil
		}

		return nil, fmt.Errorf("usps track: %w", err)
	}
	d.Raw = resp.Raw()

	var res trackingResponse
	if err := carrier.DecodeJSON(resp, &res); err != nil {
		return nil, fmt.Errorf("usps track: %w", err)
	}

	return carrier.Assemble(c.normalize(ctx, d, res), codes, opts), nil
}
