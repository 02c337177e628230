// Package fedex tracks FedEx shipments through the FedEx Track API.
package fedex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"tracker/pkg/carrier"
	"tracker/pkg/credentials"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"

	"golang.org/x/oauth2"
)

const (
	// Provider names this normalizer.
	Provider = "fedex"
	// TokenKey is the credential cache key.
	TokenKey = "fedex"
	// DefaultBaseURL is the production FedEx API host.
	DefaultBaseURL = "https://apis.fedex.com"
)

// Options configure the FedEx client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// Client implements carrier.Normalizer for FedEx.
type Client struct {
	httpClient *http.Client
	cache      credentials.Cache
	options    Options
}

var _ carrier.Normalizer = (*Client)(nil)

// New creates a FedEx client.
func New(httpClient *http.Client, cache credentials.Cache, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, cache: cache, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the FedEx carrier.
func (c *Client) Carrier() domain.Carrier { return domain.CarrierFedEx }

// Provider implements carrier.Normalizer. It names this client in logs and metrics.
func (c *Client) Provider() string { return Provider }

// TrackingURL is the public tracking page for number.
func TrackingURL(number string) string {
	return "https://www.fedex.com/fedextrack/?trknbr=" + url.QueryEscape(number)
}

func (c *Client) token(ctx context.Context) (string, error) {
	return c.cache.GetOrFetch(ctx, TokenKey, credentials.ClientCredentials(credentials.OAuthConfig{
		TokenURL:     c.options.BaseURL + "/oauth/token",
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
		return nil, fmt.Errorf("could not get fedex token: %w", err)
	}

	in := trackRequest{IncludeDetailedScans: true, TrackingInfo: make([]trackingInfo, 1)}
	in.TrackingInfo[0].TrackingNumberInfo.TrackingNumber = number
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.options.BaseURL+"/track/v1/trackingnumbers", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-locale", "en_US")

	draft := carrier.Draft{
		Carrier:        domain.CarrierFedEx,
		Provider:       Provider,
		TrackingNumber: number,
		URL:            TrackingURL(number),
	}

	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			credentials.Invalidate(ctx, c.cache, TokenKey)
		}
		if resp != nil && hasErrorCode(resp, notFoundCode) {
			draft.Raw = resp.Raw()

			return carrier.Empty(draft), nil
		}

		return nil, fmt.Errorf("fedex track: %w", err)
	}
	draft.Raw = resp.Raw()

	var res trackResponse
	if err := carrier.DecodeJSON(resp, &res); err != nil {
		return nil, fmt.Errorf("fedex track: %w", err)
	}

	result, ok := firstResult(res)
	if !ok {
		return carrier.Empty(draft), nil
	}
	if result.Error != nil {
		if result.Error.Code == notFoundCode {
			return carrier.Empty(draft), nil
		}

		return nil, serrors.With(serrors.ErrBadRequest, "fedex track: %s: %s", result.Error.Code, result.Error.Message)
	}

	return carrier.Assemble(normalize(draft, result), codes, opts), nil
}

// hasErrorCode reports whether a top level error envelope carries code.
func hasErrorCode(resp *carrier.Response, code string) bool {
	var e errorResponse
	if err := carrier.DecodeJSON(resp, &e); err != nil {
		return false
	}
	for _, item := range e.Errors {
		if item.Code == code {
			return true
		}
	}

	return false
}
