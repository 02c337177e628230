package ups

import (
	"context"
	"strings"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
	"tracker/pkg/timezone"
)

// Activity status types that mark pickup/transit and delivery.
//
//nolint: gochecknoglobals
var codes = carrier.NewCodes([]string{"P", "I"}, []string{"D"})

const (
	gmtLayout   = "20060102 15:04:05"
	localLayout = "20060102 150405"
	dateLayout  = "20060102"
)

func (a activity) location() string {
	addr := a.Location.Address

	return carrier.JoinLocation(addr.City, addr.StateProvince, firstNonEmpty(addr.CountryCode, addr.Country))
}

func (a activity) hasGMT() bool {
	return a.GMTDate != "" && a.GMTTime != ""
}

// normalize maps the first package of the reply. Localities are resolved
// only for activities without a GMT timestamp.
func (c *Client) normalize(ctx context.Context, number string, res trackResponse, raw domain.Raw) carrier.Draft {
	d := carrier.Draft{
		Carrier:        domain.CarrierUPS,
		Provider:       Provider,
		TrackingNumber: number,
		URL:            TrackingURL(number),
		Raw:            raw,
	}
	if len(res.TrackResponse.Shipment) == 0 || len(res.TrackResponse.Shipment[0].Package) == 0 {
		return d
	}
	p := res.TrackResponse.Shipment[0].Package[0]

	var pending []string
	for _, a := range p.Activity {
		if !a.hasGMT() {
			pending = append(pending, a.location())
		}
	}
	found := c.resolver.ResolveAll(ctx, pending)

	for _, a := range p.Activity {
		addr := a.Location.Address
		reported := domain.Address{
			City:    strings.TrimSpace(addr.City),
			State:   strings.TrimSpace(addr.StateProvince),
			Zip:     strings.TrimSpace(addr.PostalCode),
			Country: firstNonEmpty(addr.CountryCode, addr.Country),
		}

		var ts time.Time
		var ok bool
		if a.hasGMT() {
			ts, ok = carrier.ParseIn(time.UTC, a.GMTDate+" "+a.GMTTime, gmtLayout)
		}
		if !ok {
			place := carrier.Locate(found, a.location(), domain.Address{})
			ts, ok = carrier.ParseIn(place.Location, a.Date+" "+a.Time, localLayout)
		}
		if !ok {
			continue
		}

		e := domain.ShipmentEvent{
			Timestamp:   ts,
			Description: a.Status.Description,
			Code:        strings.TrimSpace(a.Status.Type),
		}
		if details := strings.TrimSpace(a.Status.SimplifiedTextDescription); details != "" && details != e.Description {
			e.Details = details
		}
		if !reported.IsZero() {
			e.Address = &reported
		}
		d.Events = append(d.Events, e)
	}

	d.Window = window(p)

	return d
}

// window reads the scheduled delivery date and, when present, the estimated
// delivery window times. UPS reports them without a zone; the default
// timezone is assumed.
func window(p pkg) *domain.DeliveryWindow {
	var date string
	for _, dd := range p.DeliveryDate {
		if dd.Type == "SDD" || dd.Type == "RDD" {
			date = dd.Date
		}
	}
	if date == "" {
		return nil
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	start, okStart := carrier.ParseIn(loc, date+" "+p.DeliveryTime.StartTime, localLayout)
	end, okEnd := carrier.ParseIn(loc, date+" "+p.DeliveryTime.EndTime, localLayout)
	if okStart && okEnd {
		return &domain.DeliveryWindow{Earliest: start, Latest: end}
	}

	day, ok := carrier.ParseIn(loc, date, dateLayout)
	if !ok {
		return nil
	}

	return &domain.DeliveryWindow{Earliest: day, Latest: day.Add(24*time.Hour - time.Second)}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}

	return ""
}
