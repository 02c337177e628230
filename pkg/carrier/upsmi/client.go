// Package upsmi tracks UPS Mail Innovations pieces. It authenticates with
// the same OAuth client as the UPS Track API.
package upsmi

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"tracker/pkg/carrier"
	"tracker/pkg/carrier/ups"
	"tracker/pkg/credentials"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"
)

// Provider names this normalizer.
const Provider = "upsmi"

// Options configure the Mail Innovations client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// Client implements carrier.Normalizer for UPS Mail Innovations.
type Client struct {
	httpClient *http.Client
	cache      credentials.Cache
	resolver   *timezone.Resolver
	options    Options
}

var _ carrier.Normalizer = (*Client)(nil)

// New creates a Mail Innovations client.
func New(httpClient *http.Client, cache credentials.Cache, resolver *timezone.Resolver, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = ups.DefaultBaseURL
	}

	return &Client{httpClient: httpClient, cache: cache, resolver: resolver, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the UPS Mail Innovations carrier.
func (c *Client) Carrier() domain.Carrier { return domain.CarrierUPSMI }

// Provider implements carrier.Normalizer. It names this client in logs and metrics.
func (c *Client) Provider() string { return Provider }

// Track implements carrier.Normalizer.
func (c *Client) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(trackingNumber)

	token, err := ups.Token(ctx, c.httpClient, c.cache, c.options.BaseURL, c.options.ClientID, c.options.ClientSecret)
	if err != nil {
		return nil, fmt.Errorf("could not get ups token: %w", err)
	}

	body, err := xml.Marshal(trackRequest{TrackingNumber: number, Locale: "en_US"})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.options.BaseURL+"/api/mi/v1/tracking", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Accept", "application/xml")

	d := carrier.Draft{
		Carrier:        domain.CarrierUPSMI,
		Provider:       Provider,
		TrackingNumber: number,
		URL:            "https://www.ups.com/track?tracknum=" + url.QueryEscape(number),
	}

	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			credentials.Invalidate(ctx, c.cache, ups.TokenKey)
		}

		return nil, fmt.Errorf("upsmi track: %w", err)
	}
	d.Raw = resp.Raw()

	var res trackResponse
	if err := carrier.DecodeXML(resp, &res); err != nil {
		return nil, fmt.Errorf("upsmi track: %w", err)
	}
	if res.Error != nil {
		if res.Error.Code == notFoundCode {
			return carrier.Empty(d), nil
		}

		return nil, serrors.With(serrors.ErrBadRequest, "upsmi track: %s: %s", res.Error.Code, res.Error.Description)
	}
	if len(res.Package) == 0 {
		return carrier.Empty(d), nil
	}

	return carrier.Assemble(c.normalize(ctx, d, res.Package[0]), codes, opts), nil
}
