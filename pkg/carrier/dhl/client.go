// Package dhl tracks DHL Express shipments through the DHL Shipment
// Tracking - Unified API.
package dhl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"
)

const (
	// Provider names this normalizer.
	Provider = "dhl"
	// DefaultBaseURL is the production DHL API host.
	DefaultBaseURL = "https://api-eu.dhl.com"
)

// Options configure the DHL client.
type Options struct {
	BaseURL string
	APIKey  string
}

// Client implements carrier.Normalizer for DHL Express.
type Client struct {
	httpClient *http.Client
	resolver   *timezone.Resolver
	options    Options
}

var _ carrier.Normalizer = (*Client)(nil)

// New creates a DHL client.
func New(httpClient *http.Client, resolver *timezone.Resolver, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, resolver: resolver, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the DHL Express carrier.
func (c *Client) Carrier() domain.Carrier { return domain.CarrierDHL }

// Provider implements carrier.Normalizer. It names this client in logs and metrics.
func (c *Client) Provider() string { return Provider }

// TrackingURL is the public tracking page for number.
func TrackingURL(number string) string {
	return "https://www.dhl.com/us-en/home/tracking/tracking-express.html?tracking-id=" + url.QueryEscape(number)
}

// Track implements carrier.Normalizer.
func (c *Client) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(trackingNumber)

	q := url.Values{}
	q.Set("trackingNumber", number)
	q.Set("service", "express")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL+"/track/shipments?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("DHL-API-Key", c.options.APIKey)
	req.Header.Set("Accept", "application/json")

	d := carrier.Draft{
		Carrier:        domain.CarrierDHL,
		Provider:       Provider,
		TrackingNumber: number,
		URL:            TrackingURL(number),
	}

	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) && isProblem(resp) {
			d.Raw = resp.Raw()

			return carrier.Empty(d), nil
		}

		return nil, fmt.Errorf("dhl track: %w", err)
	}
	d.Raw = resp.Raw()

	var res shipmentsResponse
	if err := carrier.DecodeJSON(resp, &res); err != nil {
		return nil, fmt.Errorf("dhl track: %w", err)
	}
	if len(res.Shipments) == 0 {
		return carrier.Empty(d), nil
	}

	return carrier.Assemble(c.normalize(ctx, d, res.Shipments[0]), codes, opts), nil
}

// isProblem recognizes the problem document DHL sends with 404.
func isProblem(resp *carrier.Response) bool {
	if resp == nil {
		return false
	}
	var p problem
	if err := carrier.DecodeJSON(resp, &p); err != nil {
		return false
	}

	return p.Status == http.StatusNotFound || p.Title != ""
}
