package tracker

import (
	"tracker/pkg/carrier/dhl"
	"tracker/pkg/carrier/dhlgm"
	"tracker/pkg/carrier/fedex"
	"tracker/pkg/carrier/ontrac"
	"tracker/pkg/carrier/ups"
	"tracker/pkg/carrier/upsmi"
	"tracker/pkg/carrier/usps"
	"tracker/pkg/domain"
)

// DefaultChains returns the provider order consulted for each carrier. The
// first provider is the carrier's own API; the rest are alternates and
// networks known to deliver the same shipments.
func DefaultChains() map[domain.Carrier][]string {
	return map[domain.Carrier][]string{
		domain.CarrierUPS:    {ups.Provider},
		domain.CarrierUPSMI:  {upsmi.Provider, usps.Provider, usps.LegacyProvider},
		domain.CarrierFedEx:  {fedex.Provider, usps.Provider, usps.LegacyProvider},
		domain.CarrierUSPS:   {usps.Provider, usps.LegacyProvider},
		domain.CarrierDHL:    {dhl.Provider},
		domain.CarrierDHLGM:  {dhlgm.Provider, usps.Provider, usps.LegacyProvider},
		domain.CarrierOnTrac: {ontrac.Provider},
	}
}

// DefaultUnderReporting lists providers that hand shipments to another network
// and often report no more than an acceptance scan.
func DefaultUnderReporting() []string {
	return []string{upsmi.Provider, dhlgm.Provider, fedex.Provider}
}

// knownProviders maps every built-in provider to its carrier.
func knownProviders() map[string]domain.Carrier {
	return map[string]domain.Carrier{
		ups.Provider:        domain.CarrierUPS,
		upsmi.Provider:      domain.CarrierUPSMI,
		fedex.Provider:      domain.CarrierFedEx,
		usps.Provider:       domain.CarrierUSPS,
		usps.LegacyProvider: domain.CarrierUSPS,
		dhl.Provider:        domain.CarrierDHL,
		dhlgm.Provider:      domain.CarrierDHLGM,
		ontrac.Provider:     domain.CarrierOnTrac,
	}
}
