// Package ontrac tracks OnTrac shipments through the OnTrac web services.
package ontrac

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"
)

const (
	// Provider names this normalizer.
	Provider = "ontrac"
	// DefaultBaseURL is the production OnTrac web services host.
	DefaultBaseURL = "https://www.shipontrac.net/OnTracWebServices/OnTracServices.svc"
)

// Options configure the OnTrac client.
type Options struct {
	BaseURL  string
	Account  string
	Password string
}

// Client implements carrier.Normalizer for OnTrac.
type Client struct {
	httpClient *http.Client
	resolver   *timezone.Resolver
	options    Options
}

var _ carrier.Normalizer = (*Client)(nil)

// New creates an OnTrac client.
func New(httpClient *http.Client, resolver *timezone.Resolver, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, resolver: resolver, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the OnTrac carrier.
func (c *Client) Carrier() domain.Carrier { return domain.CarrierOnTrac }

// Provider implements carrier.Normalizer. It names this client in logs and metrics.
func (c *Client) Provider() string { return Provider }

// TrackingURL is the public tracking page for number.
func TrackingURL(number string) string {
	return "https://www.ontrac.com/tracking/?number=" + url.QueryEscape(number)
}

// Track implements carrier.Normalizer.
func (c *Client) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(trackingNumber)

	q := url.Values{}
	q.Set("pw", c.options.Password)
	q.Set("tn", number)
	q.Set("requestType", "track")
	endpoint := c.options.BaseURL + "/V4/" + url.PathEscape(c.options.Account) + "/shipments?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("ontrac track: %w", err)
	}
	d := carrier.Draft{
		Carrier:        domain.CarrierOnTrac,
		Provider:       Provider,
		TrackingNumber: number,
		URL:            TrackingURL(number),
		Raw:            resp.Raw(),
	}

	var res trackingResult
	if err := carrier.DecodeXML(resp, &res); err != nil {
		return nil, fmt.Errorf("ontrac track: %w", err)
	}
	if msg := strings.TrimSpace(res.Error); msg != "" {
		if strings.Contains(strings.ToLower(msg), "password") || strings.Contains(strings.ToLower(msg), "account") {
			return nil, serrors.With(serrors.ErrUnauthorized, "ontrac track: %s", msg)
		}

		return nil, serrors.With(serrors.ErrBadRequest, "ontrac track: %s", msg)
	}
	if len(res.Shipments) == 0 {
		return carrier.Empty(d), nil
	}

	return carrier.Assemble(c.normalize(ctx, d, res.Shipments[0]), codes, opts), nil
}
