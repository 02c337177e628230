package fedex

import (
	"strings"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
)

//nolint: gochecknoglobals
var codes = carrier.NewCodes([]string{"PU"}, []string{"DL"})

// notFoundCode is reported inside an otherwise successful reply.
const notFoundCode = "TRACKING.TRACKINGNUMBER.NOTFOUND"

// firstResult returns the single track result of a one-number request.
func firstResult(res trackResponse) (trackResult, bool) {
	if len(res.Output.CompleteTrackResults) == 0 || len(res.Output.CompleteTrackResults[0].TrackResults) == 0 {
		return trackResult{}, false
	}

	return res.Output.CompleteTrackResults[0].TrackResults[0], true
}

// normalize maps scan events. FedEx timestamps carry their own offset so no
// locality lookup is needed.
func normalize(d carrier.Draft, r trackResult) carrier.Draft {
	for _, s := range r.ScanEvents {
		ts, ok := carrier.ParseAbsolute(s.Date)
		if !ok {
			continue
		}
		addr := domain.Address{
			City:    strings.TrimSpace(s.ScanLocation.City),
			State:   strings.TrimSpace(s.ScanLocation.StateOrProvinceCode),
			Zip:     strings.TrimSpace(s.ScanLocation.PostalCode),
			Country: strings.TrimSpace(s.ScanLocation.CountryCode),
		}
		e := domain.ShipmentEvent{
			Timestamp:   ts,
			Description: s.EventDescription,
			Details:     strings.TrimSpace(s.ExceptionDescription),
			Code:        strings.TrimSpace(s.EventType),
		}
		if !addr.IsZero() {
			e.Address = &addr
		}
		d.Events = append(d.Events, e)
	}

	begins, okBegins := carrier.ParseAbsolute(r.EstimatedDeliveryTimeWindow.Window.Begins)
	ends, okEnds := carrier.ParseAbsolute(r.EstimatedDeliveryTimeWindow.Window.Ends)
	if okBegins && okEnds {
		d.Window = &domain.DeliveryWindow{Earliest: begins, Latest: ends}
	}

	return d
}
