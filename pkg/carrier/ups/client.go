// Package ups tracks UPS small package shipments through the UPS Track API.
package ups

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

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	// Provider names this normalizer.
	Provider = "ups"
	// TokenKey is the credential cache key, shared with UPS Mail Innovations.
	TokenKey = "ups"
	// DefaultBaseURL is the production UPS API host.
	DefaultBaseURL = "https://onlinetools.ups.com"
)

// Options configure the UPS client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// Client implements carrier.Normalizer for UPS.
type Client struct {
	httpClient *http.Client
	cache      credentials.Cache
	resolver   *timezone.Resolver
	options    Options
}

var _ carrier.Normalizer = (*Client)(nil)

// New creates a UPS client.
func New(httpClient *http.Client, cache credentials.Cache, resolver *timezone.Resolver, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, cache: cache, resolver: resolver, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the UPS carrier.
func (c *Client) Carrier() domain.Carrier { return domain.CarrierUPS }

// Provider implements carrier.Normalizer. It names this client in logs and metrics.
func (c *Client) Provider() string { return Provider }

// TrackingURL is the public tracking page for number.
func TrackingURL(number string) string {
	return "https://www.ups.com/track?tracknum=" + url.QueryEscape(number)
}

// Token returns a bearer token for the UPS OAuth client.
func Token(ctx context.Context, httpClient *http.Client, cache credentials.Cache, baseURL, clientID, clientSecret string) (string, error) {
	return cache.GetOrFetch(ctx, TokenKey, credentials.ClientCredentials(credentials.OAuthConfig{
		TokenURL:     baseURL + "/security/v1/oauth/token",
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}, httpClient))
}

// Track implements carrier.Normalizer.
func (c *Client) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(trackingNumber)

	token, err := Token(ctx, c.httpClient, c.cache, c.options.BaseURL, c.options.ClientID, c.options.ClientSecret)
	if err != nil {
		return nil, fmt.Errorf("could not get ups token: %w", err)
	}

	q := url.Values{}
	q.Set("locale", "en_US")
	q.Set("returnSignature", "false")
	endpoint := c.options.BaseURL + "/api/track/v1/details/" + url.PathEscape(number) + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("transId", uuid.NewString())
	req.Header.Set("transactionSrc", "tracker")

	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			credentials.Invalidate(ctx, c.cache, TokenKey)
		}
		if errors.Is(err, serrors.ErrNotFound) && isNotFound(resp) {
			return carrier.Empty(c.draft(number, resp)), nil
		}

		return nil, fmt.Errorf("ups track: %w", err)
	}

	var res trackResponse
	if err := carrier.DecodeJSON(resp, &res); err != nil {
		return nil, fmt.Errorf("ups track: %w", err)
	}

	return carrier.Assemble(c.normalize(ctx, number, res, resp.Raw()), codes, opts), nil
}

func (c *Client) draft(number string, resp *carrier.Response) carrier.Draft {
	return carrier.Draft{
		Carrier:        domain.CarrierUPS,
		Provider:       Provider,
		TrackingNumber: number,
		URL:            TrackingURL(number),
		Raw:            resp.Raw(),
	}
}

// isNotFound recognizes the error envelope UPS returns with 404 for unknown numbers.
func isNotFound(resp *carrier.Response) bool {
	if resp == nil {
		return false
	}
	var e errorResponse
	if err := carrier.DecodeJSON(resp, &e); err != nil {
		return false
	}

	return len(e.Response.Errors) > 0
}
