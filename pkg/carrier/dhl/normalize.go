package dhl

import (
	"context"
	"strings"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
)

//nolint: gochecknoglobals
var codes = carrier.NewCodes([]string{"transit"}, []string{"delivered"})

const localLayout = "2006-01-02T15:04:05"

// normalize maps the first shipment. DHL reports local timestamps and a
// single composite locality such as "NEW YORK, NY - USA" which is
// decomposed through the resolver.
func (c *Client) normalize(ctx context.Context, d carrier.Draft, s shipment) carrier.Draft {
	texts := make([]string, 0, len(s.Events))
	for _, e := range s.Events {
		texts = append(texts, e.Location.Address.AddressLocality)
	}
	found := c.resolver.ResolveAll(ctx, texts)

	for _, e := range s.Events {
		addr := e.Location.Address
		place := carrier.Locate(found, addr.AddressLocality, domain.Address{
			Zip:     strings.TrimSpace(addr.PostalCode),
			Country: strings.TrimSpace(addr.CountryCode),
		})

		ts, ok := carrier.ParseAbsolute(e.Timestamp)
		if !ok {
			ts, ok = carrier.ParseIn(place.Location, e.Timestamp, localLayout)
		}
		if !ok {
			continue
		}

		description := firstNonEmpty(e.Description, e.Status)
		ev := domain.ShipmentEvent{
			Timestamp:   ts,
			Description: description,
			Details:     strings.TrimSpace(e.Remark),
			Code:        strings.ToLower(strings.TrimSpace(e.StatusCode)),
			Address:     place.Address,
		}
		d.Events = append(d.Events, ev)
	}

	from, okFrom := carrier.ParseAbsolute(s.EstimatedDeliveryTimeFrame.EstimatedFrom)
	through, okThrough := carrier.ParseAbsolute(s.EstimatedDeliveryTimeFrame.EstimatedThrough)
	switch {
	case okFrom && okThrough:
		d.Window = &domain.DeliveryWindow{Earliest: from, Latest: through}
	default:
		if eta, ok := carrier.ParseAbsolute(s.EstimatedTimeOfDelivery); ok {
			d.Window = &domain.DeliveryWindow{Earliest: eta, Latest: eta}
		}
	}

	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}

	return ""
}
