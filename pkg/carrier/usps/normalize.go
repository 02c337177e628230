package usps

import (
	"context"
	"strings"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
)

// Event codes shared by both USPS APIs.
//
//nolint: gochecknoglobals
var codes = carrier.NewCodes([]string{"03", "OA"}, []string{"01"})

const (
	localLayout       = "2006-01-02T15:04:05"
	legacyLayout      = "January 2, 2006 3:04 pm"
	legacyDateLayout  = "January 2, 2006"
	legacyNotFoundErr = "-2147219302"
	legacyAuthErr     = "80040B1A"
)

func eventLocation(city, state, zip string) string {
	return carrier.JoinLocation(city, state, zip)
}

func (c *Client) normalize(ctx context.Context, d carrier.Draft, res trackingResponse) carrier.Draft {
	var pending []string
	for _, e := range res.TrackingEvents {
		if e.GMTTimestamp == "" {
			pending = append(pending, eventLocation(e.EventCity, e.EventState, e.EventZIP))
		}
	}
	found := c.resolver.ResolveAll(ctx, pending)

	for _, e := range res.TrackingEvents {
		text := eventLocation(e.EventCity, e.EventState, e.EventZIP)
		reported := domain.Address{
			City:    strings.TrimSpace(e.EventCity),
			State:   strings.TrimSpace(e.EventState),
			Zip:     strings.TrimSpace(e.EventZIP),
			Country: strings.TrimSpace(e.EventCountry),
		}

		ts, ok := carrier.ParseAbsolute(e.GMTTimestamp)
		if !ok {
			place := carrier.Locate(found, text, reported)
			ts, ok = carrier.ParseIn(place.Location, e.EventTimestamp, localLayout)
		}
		if !ok {
			continue
		}

		event := domain.ShipmentEvent{
			Timestamp:   ts,
			Description: e.EventType,
			Details:     strings.TrimSpace(e.Firm),
			Code:        strings.TrimSpace(e.EventCode),
		}
		if !reported.IsZero() {
			event.Address = &reported
		}
		d.Events = append(d.Events, event)
	}

	if ts, ok := carrier.ParseAbsolute(res.ExpectedDeliveryTimeStamp); ok {
		d.Window = &domain.DeliveryWindow{Earliest: ts, Latest: ts}
	} else if ts, ok := carrier.ParseIn(nil, res.ExpectedDeliveryTimeStamp, localLayout); ok {
		d.Window = &domain.DeliveryWindow{Earliest: ts, Latest: ts}
	}

	return d
}

func (c *LegacyClient) normalize(ctx context.Context, d carrier.Draft, info trackInfo) carrier.Draft {
	details := make([]trackDetail, 0, len(info.TrackDetail)+1)
	if info.TrackSummary != nil {
		details = append(details, *info.TrackSummary)
	}
	details = append(details, info.TrackDetail...)

	pending := make([]string, 0, len(details))
	for _, e := range details {
		pending = append(pending, eventLocation(e.EventCity, e.EventState, e.EventZIPCode))
	}
	found := c.resolver.ResolveAll(ctx, pending)

	for _, e := range details {
		reported := domain.Address{
			City:    strings.TrimSpace(e.EventCity),
			State:   strings.TrimSpace(e.EventState),
			Zip:     strings.TrimSpace(e.EventZIPCode),
			Country: strings.TrimSpace(e.EventCountry),
		}
		place := carrier.Locate(found, eventLocation(e.EventCity, e.EventState, e.EventZIPCode), reported)

		value := strings.TrimSpace(e.EventDate + " " + e.EventTime)
		ts, ok := carrier.ParseIn(place.Location, value, legacyLayout, legacyDateLayout)
		if !ok {
			continue
		}

		event := domain.ShipmentEvent{
			Timestamp:   ts,
			Description: e.Event,
			Details:     strings.TrimSpace(e.FirmName),
			Code:        strings.TrimSpace(e.EventCode),
		}
		if !reported.IsZero() {
			event.Address = &reported
		}
		d.Events = append(d.Events, event)
	}

	if day, ok := carrier.ParseIn(nil, info.ExpectedDeliveryDate, legacyDateLayout); ok {
		d.Window = &domain.DeliveryWindow{Earliest: day, Latest: day.Add(24*time.Hour - time.Second)}
	}

	return d
}
