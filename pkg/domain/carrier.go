package domain

import (
	"fmt"
	"strings"
)

// Carrier identifies a carrier network by its lower-case tag.
type Carrier string

const (
	// CarrierUPS is UPS small package.
	CarrierUPS Carrier = "ups"
	// CarrierUPSMI is UPS Mail Innovations, which hands off to USPS for last mile.
	CarrierUPSMI Carrier = "upsmi"
	// CarrierFedEx is FedEx, including SmartPost numbers delivered by USPS.
	CarrierFedEx Carrier = "fedex"
	// CarrierUSPS is the United States Postal Service.
	CarrierUSPS Carrier = "usps"
	// CarrierDHL is DHL Express.
	CarrierDHL Carrier = "dhl"
	// CarrierDHLGM is DHL eCommerce (formerly DHL Global Mail).
	CarrierDHLGM Carrier = "dhlgm"
	// CarrierOnTrac is OnTrac.
	CarrierOnTrac Carrier = "ontrac"
)

// Carriers lists every supported carrier in detection order.
func Carriers() []Carrier {
	return []Carrier{
		CarrierUPS,
		CarrierUSPS,
		CarrierFedEx,
		CarrierDHL,
		CarrierOnTrac,
		CarrierDHLGM,
		CarrierUPSMI,
	}
}

// ParseCarrier converts a case-insensitive carrier designation into a Carrier.
func ParseCarrier(s string) (Carrier, error) {
	c := Carrier(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Carriers() {
		if c == known {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown carrier %q", s)
}

func (c Carrier) String() string { return string(c) }
