package trackingnumber

import (
	"regexp"
	"tracker/pkg/checksum"
	"tracker/pkg/domain"
)

// Format is a named tracking number shape owned by one carrier. A nil Check
// means the pattern alone identifies the number.
type Format struct {
	Name    string
	Carrier domain.Carrier
	Pattern *regexp.Regexp
	Check   Check
}

// Matches reports whether a normalized number fits the pattern and passes
// the check, if any.
func (f Format) Matches(number string) bool {
	if !f.Pattern.MatchString(number) {
		return false
	}

	return f.Check == nil || f.Check.Valid(number)
}

//nolint: gochecknoglobals
var (
	mod10x31 = Weighted{Weights: []int{3, 1}, Modulus: checksum.Mod10}

	// IMpb payloads are shared by USPS and the carriers that inject into its network.
	impb22    = regexp.MustCompile(`^9[1-5]\d{20}$`)
	impb26    = regexp.MustCompile(`^9[1-5]\d{24}$`)
	impbZip30 = regexp.MustCompile(`^420\d{5}9\d{21}$`)
	impbZip34 = regexp.MustCompile(`^420\d{9}9\d{21}$|^420\d{5}9\d{25}$`)

	zip30Check = Weighted{Offset: 8, Weights: []int{3, 1}, Modulus: checksum.Mod10}
	// A 34-digit number is either a ZIP+4 routing prefix followed by a 22-digit
	// payload or a ZIP5 prefix followed by a 26-digit payload.
	zip34Check = AnyOf{
		Weighted{Offset: 12, Weights: []int{3, 1}, Modulus: checksum.Mod10},
		Weighted{Offset: 8, Weights: []int{3, 1}, Modulus: checksum.Mod10},
	}
)

func impbFormats(carrier domain.Carrier) []Format {
	return []Format{
		{Name: "IMpb 22", Carrier: carrier, Pattern: impb22, Check: mod10x31},
		{Name: "IMpb 26", Carrier: carrier, Pattern: impb26, Check: mod10x31},
		{Name: "IMpb 30 with ZIP", Carrier: carrier, Pattern: impbZip30, Check: zip30Check},
		{Name: "IMpb 34 with ZIP", Carrier: carrier, Pattern: impbZip34, Check: zip34Check},
	}
}

// formatTable builds the per-carrier format lists. The lists intentionally
// overlap: the IMpb shapes validate for every carrier that uses them.
func formatTable() map[domain.Carrier][]Format {
	ups := []Format{
		{
			Name:    "UPS 1Z",
			Carrier: domain.CarrierUPS,
			Pattern: regexp.MustCompile(`^1Z[0-9A-Z]{16}$`),
			Check:   Weighted{Offset: 2, Weights: []int{1, 2}, Modulus: checksum.Mod10, Transcode: true},
		},
	}

	fedex := []Format{
		{
			Name:    "FedEx Express 12",
			Carrier: domain.CarrierFedEx,
			Pattern: regexp.MustCompile(`^\d{12}$`),
			Check:   Weighted{Weights: []int{3, 1, 7}, Modulus: checksum.Mod11},
		},
		{
			Name:    "FedEx Ground 15",
			Carrier: domain.CarrierFedEx,
			Pattern: regexp.MustCompile(`^\d{15}$`),
			Check:   Weighted{Weights: []int{1, 3}, Modulus: checksum.Mod10},
		},
		{
			Name:    "FedEx Ground 96",
			Carrier: domain.CarrierFedEx,
			Pattern: regexp.MustCompile(`^96\d{20}$`),
			Check:   Weighted{Offset: 7, Weights: []int{1, 3}, Modulus: checksum.Mod10},
		},
		{
			Name:    "FedEx SmartPost",
			Carrier: domain.CarrierFedEx,
			Pattern: regexp.MustCompile(`^92\d{20}$`),
			Check:   mod10x31,
		},
	}

	usps := append([]Format{
		{
			Name:    "USPS 20",
			Carrier: domain.CarrierUSPS,
			Pattern: regexp.MustCompile(`^\d{20}$`),
			Check:   mod10x31,
		},
		{
			Name:    "USPS S10",
			Carrier: domain.CarrierUSPS,
			Pattern: regexp.MustCompile(`^[A-Z]{2}\d{9}US$`),
			Check:   S10{},
		},
	}, impbFormats(domain.CarrierUSPS)...)

	dhl := []Format{
		{
			Name:    "DHL Express waybill",
			Carrier: domain.CarrierDHL,
			Pattern: regexp.MustCompile(`^\d{10}$`),
			Check:   Mod7{},
		},
		{
			Name:    "DHL JJD",
			Carrier: domain.CarrierDHL,
			Pattern: regexp.MustCompile(`^JJD\d{18,20}$`),
		},
		{
			Name:    "DHL JD",
			Carrier: domain.CarrierDHL,
			Pattern: regexp.MustCompile(`^JD\d{18}$`),
		},
	}

	dhlgm := []Format{
		{
			Name:    "DHL eCommerce GM",
			Carrier: domain.CarrierDHLGM,
			Pattern: regexp.MustCompile(`^GM\d{16,18}$`),
		},
		{Name: "IMpb 22", Carrier: domain.CarrierDHLGM, Pattern: impb22, Check: mod10x31},
		{Name: "IMpb 30 with ZIP", Carrier: domain.CarrierDHLGM, Pattern: impbZip30, Check: zip30Check},
	}

	upsmi := append([]Format{
		{
			Name:    "UPS Mail Innovations",
			Carrier: domain.CarrierUPSMI,
			Pattern: regexp.MustCompile(`^MI\d{6}[0-9A-Z]{1,22}$`),
		},
	}, impbFormats(domain.CarrierUPSMI)...)

	ontrac := []Format{
		{
			Name:    "OnTrac",
			Carrier: domain.CarrierOnTrac,
			Pattern: regexp.MustCompile(`^[CD]\d{14}$`),
			Check:   Weighted{Weights: []int{1, 2}, Modulus: checksum.Mod10, Transcode: true},
		},
	}

	return map[domain.Carrier][]Format{
		domain.CarrierUPS:    ups,
		domain.CarrierFedEx:  fedex,
		domain.CarrierUSPS:   usps,
		domain.CarrierDHL:    dhl,
		domain.CarrierDHLGM:  dhlgm,
		domain.CarrierUPSMI:  upsmi,
		domain.CarrierOnTrac: ontrac,
	}
}
