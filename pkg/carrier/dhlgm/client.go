// Package dhlgm tracks DHL eCommerce (formerly DHL Global Mail) packages
// through the DHL eCommerce Americas tracking API.
package dhlgm

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
	// Provider names this normalizer.
	Provider = "dhlgm"
	// TokenKey is the credential cache key.
	TokenKey = "dhlgm"
	// DefaultBaseURL is the production DHL eCommerce API host.
	DefaultBaseURL = "https://api.dhlecs.com"
)

// Options configure the DHL eCommerce client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// Client implements carrier.Normalizer for DHL eCommerce.
type Client struct {
	httpClient *http.Client
	cache      credentials.Cache
	resolver   *timezone.Resolver
	options    Options
}

var _ carrier.Normalizer = (*Client)(nil)

// New creates a DHL eCommerce client.
func New(httpClient *http.Client, cache credentials.Cache, resolver *timezone.Resolver, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, cache: cache, resolver: resolver, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the DHL eCommerce carrier.
func (c *Client) Carrier() domain.Carrier { return domain.CarrierDHLGM }

// Provider implements carrier.Normalizer. It names this client in logs and metrics.
func (c *Client) Provider() string { return Provider }

// TrackingURL is the public tracking page for number.
func TrackingURL(number string) string {
	return "https://www.logistics.dhl/us-en/home/tracking/tracking-ecommerce.html?tracking-id=" + url.QueryEscape(number)
}

func (c *Client) token(ctx context.Context) (string, error) {
	return c.cache.GetOrFetch(ctx, TokenKey, credentials.ClientCredentials(credentials.OAuthConfig{
		TokenURL:     c.options.BaseURL + "/auth/v4/accesstoken",
		ClientID:     c.options.ClientID,
		ClientSecret: c.options.ClientSecret,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}, c.httpClient))
}

// Track implements carrier.Normalizer.
func (c *Client) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(trackingNumber)

	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get dhlgm token: %w", err)
	}

	q := url.Values{}
	q.Set("trackingId", number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL+"/tracking/v4/package?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	d := carrier.Draft{
		Carrier:        domain.CarrierDHLGM,
		Provider:       Provider,
		TrackingNumber: number,
		URL:            TrackingURL(number),
	}

	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			credentials.Invalidate(ctx, c.cache, TokenKey)
		}
		if errors.Is(err, serrors.ErrNotFound) {
			d.Raw = resp.Raw()

			return carrier.Empty(d), nil
		}

		return nil, fmt.Errorf("dhlgm track: %w", err)
	}
	d.Raw = resp.Raw()

	var res trackingResponse
	if err := carrier.DecodeJSON(resp, &res); err != nil {
		return nil, fmt.Errorf("dhlgm track: %w", err)
	}
	if len(res.Packages) == 0 {
		return carrier.Empty(d), nil
	}

	return carrier.Assemble(c.normalize(ctx, d, res.Packages[0]), codes, opts), nil
}
