package carrier

import (
	"regexp"
	"slices"
	"strings"
	"time"
	"tracker/pkg/domain"
)

// Codes holds a carrier's static shipped and delivered event codes. Matching
// is exact; free text is never inspected.
type Codes struct {
	shipped   map[string]struct{}
	delivered map[string]struct{}
}

// NewCodes builds a Codes from the carrier's code lists.
func NewCodes(shipped, delivered []string) Codes {
	toSet := func(codes []string) map[string]struct{} {
		m := make(map[string]struct{}, len(codes))
		for _, c := range codes {
			m[c] = struct{}{}
		}

		return m
	}

	return Codes{shipped: toSet(shipped), delivered: toSet(delivered)}
}

// Shipped reports whether code marks entry into the carrier network.
func (c Codes) Shipped(code string) bool {
	_, ok := c.shipped[strings.TrimSpace(code)]

	return ok
}

// Delivered reports whether code marks delivery.
func (c Codes) Delivered(code string) bool {
	_, ok := c.delivered[strings.TrimSpace(code)]

	return ok
}

// Draft is a carrier result before filtering and derivation.
type Draft struct {
	Carrier        domain.Carrier
	Provider       string
	TrackingNumber string
	Events         []domain.ShipmentEvent
	Window         *domain.DeliveryWindow
	URL            string
	Raw            domain.Raw
}

// Assemble turns a draft into a canonical TrackResult:
//   - events before opts.MinDate and events without a description are dropped
//   - events are sorted oldest first, keeping carrier order for equal instants
//   - DeliveredAt is the latest delivered-code event
//   - ShippedAt is the earliest shipped-code event, or DeliveredAt when none
func Assemble(d Draft, codes Codes, opts Options) *domain.TrackResult {
	events := make([]domain.ShipmentEvent, 0, len(d.Events))
	for _, e := range d.Events {
		e.Description = strings.TrimSpace(e.Description)
		if e.Description == "" {
			continue
		}
		if !opts.MinDate.IsZero() && e.Timestamp.Before(opts.MinDate) {
			continue
		}
		e.Timestamp = e.Timestamp.UTC()
		if e.Address != nil && e.Address.IsZero() {
			e.Address = nil
		}
		events = append(events, e)
	}
	slices.SortStableFunc(events, func(a, b domain.ShipmentEvent) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	res := &domain.TrackResult{
		Carrier:                 d.Carrier,
		Provider:                d.Provider,
		TrackingNumber:          d.TrackingNumber,
		Events:                  events,
		EstimatedDeliveryWindow: d.Window,
		URL:                     d.URL,
		Raw:                     d.Raw,
	}

	for _, e := range events {
		if codes.Delivered(e.Code) {
			res.DeliveredAt = ptr(e.Timestamp)
		}
	}
	for _, e := range events {
		if codes.Shipped(e.Code) {
			res.ShippedAt = ptr(e.Timestamp)

			break
		}
	}
	if res.ShippedAt == nil && res.DeliveredAt != nil {
		res.ShippedAt = ptr(*res.DeliveredAt)
	}

	return res
}

// Empty is the result of a well-formed "not found" reply.
func Empty(d Draft) *domain.TrackResult {
	d.Events = nil

	return Assemble(d, Codes{}, Options{})
}

func ptr(t time.Time) *time.Time { return &t }

// PromoFilter removes carrier self-promotion embedded in city fields.
type PromoFilter struct {
	re *regexp.Regexp
}

// NewPromoFilter compiles the denylist into one case-insensitive pattern.
// Matching folds case rune by rune, so multi-byte input is never cut inside
// a character.
func NewPromoFilter(denylist ...string) PromoFilter {
	alts := make([]string, 0, len(denylist))
	for _, token := range denylist {
		if token != "" {
			alts = append(alts, regexp.QuoteMeta(token))
		}
	}
	if len(alts) == 0 {
		return PromoFilter{}
	}

	return PromoFilter{re: regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`)}
}

// Strip removes every denylisted token from city and trims what remains.
func (f PromoFilter) Strip(city string) string {
	out := city
	if f.re != nil {
		out = f.re.ReplaceAllLiteralString(out, "")
	}

	return strings.Join(strings.Fields(strings.Trim(out, " ,-")), " ")
}
