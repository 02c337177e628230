package usps

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"
)

const (
	// LegacyProvider names the Web Tools normalizer.
	LegacyProvider = "usps-legacy"
	// DefaultLegacyBaseURL is the production Web Tools host.
	DefaultLegacyBaseURL = "https://secure.shippingapis.com"
)

// LegacyOptions configure the Web Tools client.
type LegacyOptions struct {
	BaseURL  string
	UserID   string
	ClientIP string
}

// LegacyClient implements carrier.Normalizer for the Web Tools TrackV2 API.
type LegacyClient struct {
	httpClient *http.Client
	resolver   *timezone.Resolver
	options    LegacyOptions
}

var _ carrier.Normalizer = (*LegacyClient)(nil)

// NewLegacy creates a Web Tools client.
func NewLegacy(httpClient *http.Client, resolver *timezone.Resolver, options LegacyOptions) *LegacyClient {
	if options.BaseURL == "" {
		options.BaseURL = DefaultLegacyBaseURL
	}
	if options.ClientIP == "" {
		options.ClientIP = "127.0.0.1"
	}

	return &LegacyClient{httpClient: httpClient, resolver: resolver, options: options}
}

// Carrier implements carrier.Normalizer. It always returns the USPS carrier.
func (c *LegacyClient) Carrier() domain.Carrier { return domain.CarrierUSPS }

// Provider implements carrier.Normalizer. It names the legacy Web Tools XML API in logs and metrics.
func (c *LegacyClient) Provider() string { return LegacyProvider }

// Track implements carrier.Normalizer.
func (c *LegacyClient) Track(ctx context.Context, trackingNumber string, opts carrier.Options) (*domain.TrackResult, error) {
	number := domain.NormalizeTrackingNumber(trackingNumber)

	in := trackFieldRequest{UserID: c.options.UserID, Revision: "1", ClientIP: c.options.ClientIP, SourceID: "tracker"}
	in.TrackID.ID = number
	payload, err := xml.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	q := url.Values{}
	q.Set("API", "TrackV2")
	q.Set("XML", string(payload))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL+"/ShippingAPI.dll?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := carrier.Do(c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("usps legacy track: %w", err)
	}
	d := draft(LegacyProvider, number)
	d.Raw = resp.Raw()

	var res trackResponse
	if err := carrier.DecodeXML(resp, &res); err != nil {
		return nil, fmt.Errorf("usps legacy track: %w", err)
	}

	// Web Tools answers 200 even for rejected requests.
	if res.XMLName.Local == "Error" {
		if res.Number == legacyAuthErr {
			return nil, serrors.With(serrors.ErrUnauthorized, "usps legacy track: %s", res.Description)
		}

		return nil, serrors.With(serrors.ErrUnavailable, "usps legacy track: %s: %s", res.Number, res.Description)
	}
	if len(res.TrackInfo) == 0 {
		return carrier.Empty(d), nil
	}

	info := res.TrackInfo[0]
	if info.Error != nil {
		if info.Error.Number == legacyNotFoundErr {
			return carrier.Empty(d), nil
		}

		return nil, serrors.With(serrors.ErrBadRequest, "usps legacy track: %s: %s", info.Error.Number, info.Error.Description)
	}

	return carrier.Assemble(c.normalize(ctx, d, info), codes, opts), nil
}
