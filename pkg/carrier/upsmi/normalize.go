package upsmi

import (
	"context"
	"strings"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
)

//nolint: gochecknoglobals
var (
	codes = carrier.NewCodes([]string{"MP", "M2"}, []string{"D1", "DL"})

	promo = carrier.NewPromoFilter("UPS MAIL INNOVATIONS", "UPS MI")
)

const (
	localLayout = "01/02/2006 15:04"
	dateLayout  = "01/02/2006"

	// notFoundCode marks an unknown mail piece.
	notFoundCode = "TW0001"
)

func (e event) location() string {
	return promo.Strip(e.Location)
}

// normalize maps the first package. Times are local to the event location.
func (c *Client) normalize(ctx context.Context, d carrier.Draft, p pkg) carrier.Draft {
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

		ts, ok := carrier.ParseIn(place.Location, strings.TrimSpace(e.Date+" "+e.Time), localLayout, dateLayout)
		if !ok {
			continue
		}

		d.Events = append(d.Events, domain.ShipmentEvent{
			Timestamp:   ts,
			Description: e.Description,
			Code:        strings.TrimSpace(e.Code),
			Address:     place.Address,
		})
	}

	if day, ok := carrier.ParseIn(nil, p.ScheduledDeliveryDate, dateLayout); ok {
		d.Window = &domain.DeliveryWindow{Earliest: day, Latest: day.Add(24*time.Hour - time.Second)}
	}

	return d
}
