package dhlgm

import (
	"context"
	"strings"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
	"tracker/pkg/timezone"
)

//nolint: gochecknoglobals
var (
	codes = carrier.NewCodes([]string{"220", "260"}, []string{"600", "620"})

	// promo is carrier branding that shows up in place of or next to a city.
	promo = carrier.NewPromoFilter("DHL ECOMMERCE", "DHL GLOBAL MAIL", "DHL ECS")
)

const (
	localLayout = "2006-01-02 15:04:05"
	dateLayout  = "2006-01-02"
)

// location is the free-text locality of an event with carrier branding removed.
func (e event) location() string {
	return promo.Strip(e.Location)
}

// normalize maps the first package. Event times come with a zone
// abbreviation; locations are decomposed through the resolver.
func (c *Client) normalize(ctx context.Context, d carrier.Draft, p packageInfo) carrier.Draft {
	texts := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		texts = append(texts, e.location())
	}
	found := c.resolver.ResolveAll(ctx, texts)

	for _, e := range p.Events {
		text := e.location()
		place := carrier.Locate(found, text, domain.Address{
			Zip:     strings.TrimSpace(e.PostalCode),
			Country: strings.TrimSpace(e.Country),
		})

		loc := place.Location
		if tz := strings.TrimSpace(e.TimeZone); tz != "" {
			loc = timezone.Location(tz)
		}
		ts, ok := carrier.ParseIn(loc, e.Date+" "+e.Time, localLayout)
		if !ok {
			continue
		}

		d.Events = append(d.Events, domain.ShipmentEvent{
			Timestamp:   ts,
			Description: e.PrimaryEventDescription,
			Details:     strings.TrimSpace(e.SecondaryEventDescription),
			Code:        e.PrimaryEventID.String(),
			Address:     place.Address,
		})
	}

	if day, ok := carrier.ParseIn(nil, p.Package.ExpectedDelivery, dateLayout); ok {
		d.Window = &domain.DeliveryWindow{Earliest: day, Latest: day.Add(24*time.Hour - time.Second)}
	}

	return d
}
