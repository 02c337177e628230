package ontrac

import (
	"context"
	"strings"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
)

//nolint: gochecknoglobals
var codes = carrier.NewCodes([]string{"PU", "PS"}, []string{"DL"})

const localLayout = "2006-01-02T15:04:05"

func (e event) location() string {
	return carrier.JoinLocation(e.City, e.State, e.Zip)
}

// normalize maps the first shipment. OnTrac reports local times and
// separate address components.
func (c *Client) normalize(ctx context.Context, d carrier.Draft, s shipment) carrier.Draft {
	texts := make([]string, 0, len(s.Events))
	for _, e := range s.Events {
		texts = append(texts, e.location())
	}
	found := c.resolver.ResolveAll(ctx, texts)

	for _, e := range s.Events {
		reported := domain.Address{
			City:  strings.TrimSpace(e.City),
			State: strings.TrimSpace(e.State),
			Zip:   strings.TrimSpace(e.Zip),
		}
		place := carrier.Locate(found, e.location(), reported)

		ts, ok := carrier.ParseIn(place.Location, e.EventTime, localLayout)
		if !ok {
			continue
		}

		ev := domain.ShipmentEvent{
			Timestamp:   ts,
			Description: e.Description,
			Code:        strings.TrimSpace(e.Status),
		}
		if !reported.IsZero() {
			ev.Address = &reported
		}
		d.Events = append(d.Events, ev)
	}

	if day, ok := carrier.ParseIn(nil, s.ExpDelDate, localLayout); ok {
		d.Window = &domain.DeliveryWindow{Earliest: day, Latest: day.Add(24*time.Hour - time.Second)}
	}

	return d
}
