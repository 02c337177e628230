package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Address is the location attached to a shipment event. Every field is optional.
type Address struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsZero reports whether no address component is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// ShipmentEvent is a single canonical tracking event.
type ShipmentEvent struct {
	// Timestamp is always an absolute instant in UTC.
	Timestamp time.Time `json:"timestamp"`
	// Description is never empty for events included in a TrackResult.
	Description string `json:"description"`
	// Details holds an optional secondary description.
	Details string `json:"details,omitempty"`
	// Code is the carrier-native status code of the event.
	Code string `json:"code,omitempty"`
	// Address is where the event happened, if known.
	Address *Address `json:"address,omitempty"`
}

// DeliveryWindow is an estimated delivery range. Earliest and Latest may be equal.
type DeliveryWindow struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}

// Raw is the unmodified upstream payload.
type Raw struct {
	ContentType string
	Body        []byte
}

// MarshalJSON embeds JSON payloads verbatim and emits everything else as a string.
func (r Raw) MarshalJSON() ([]byte, error) {
	if len(r.Body) == 0 {
		return []byte("null"), nil
	}
	if strings.Contains(r.ContentType, "json") && json.Valid(r.Body) {
		return r.Body, nil
	}

	return json.Marshal(string(r.Body))
}

// TrackResult is the canonical outcome of a tracking lookup.
type TrackResult struct {
	// Carrier is the carrier network of the provider that answered.
	Carrier Carrier `json:"carrier"`
	// Provider is the provider API that answered, e.g. "usps-legacy".
	Provider string `json:"provider"`
	// TrackingNumber is the normalized tracking number.
	TrackingNumber string `json:"trackingNumber"`
	// Events are ordered oldest first.
	Events []ShipmentEvent `json:"events"`

	ShippedAt               *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt             *time.Time      `json:"deliveredAt,omitempty"`
	EstimatedDeliveryWindow *DeliveryWindow `json:"estimatedDeliveryWindow,omitempty"`
	URL                     string          `json:"url,omitempty"`

	Raw Raw `json:"raw"`
}

// Delivered reports whether a delivery event was observed.
func (r *TrackResult) Delivered() bool {
	return r != nil && r.DeliveredAt != nil
}
