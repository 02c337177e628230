package carrier_test

import (
	"testing"
	"time"
	"tracker/pkg/carrier"
	"tracker/pkg/domain"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

var codes = carrier.NewCodes([]string{"PU"}, []string{"DL"}) //nolint: gochecknoglobals

func at(day, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
}

func TestAssemble_SortsAndDerives(t *testing.T) {
	res := carrier.Assemble(carrier.Draft{
		Carrier:  domain.CarrierFedEx,
		Provider: "fedex",
		Events: []domain.ShipmentEvent{
			{Timestamp: at(4, 10), Description: "Delivered", Code: "DL"},
			{Timestamp: at(2, 8), Description: "Picked up", Code: "PU"},
			{Timestamp: at(3, 9), Description: "In transit", Code: "IT"},
		},
	}, codes, carrier.Options{})

	require.Len(t, res.Events, 3)
	require.Equal(t, "Picked up", res.Events[0].Description)
	require.Equal(t, "Delivered", res.Events[2].Description)
	require.Equal(t, at(2, 8), *res.ShippedAt)
	require.Equal(t, at(4, 10), *res.DeliveredAt)
	require.True(t, res.Delivered())
}

func TestAssemble_MinDateFilter(t *testing.T) {
	res := carrier.Assemble(carrier.Draft{
		Events: []domain.ShipmentEvent{
			{Timestamp: at(1, 0), Description: "Old shipment picked up", Code: "PU"},
			{Timestamp: at(1, 5), Description: "Old shipment delivered", Code: "DL"},
			{Timestamp: at(10, 0), Description: "Label created", Code: "OC"},
			{Timestamp: at(11, 0), Description: "Arrived", Code: "AR"},
		},
	}, codes, carrier.Options{MinDate: at(10, 0)})

	require.Len(t, res.Events, 2)
	for _, e := range res.Events {
		require.False(t, e.Timestamp.Before(at(10, 0)))
	}
	require.Nil(t, res.DeliveredAt)
	require.Nil(t, res.ShippedAt)
}

func TestAssemble_ShippedDefaultsToDelivered(t *testing.T) {
	res := carrier.Assemble(carrier.Draft{
		Events: []domain.ShipmentEvent{
			{Timestamp: at(5, 12), Description: "Delivered", Code: "DL"},
			{Timestamp: at(5, 9), Description: "Out for delivery", Code: "OD"},
		},
	}, codes, carrier.Options{})

	require.NotNil(t, res.DeliveredAt)
	require.Equal(t, *res.DeliveredAt, *res.ShippedAt)
}

func TestAssemble_LatestDeliveredWins(t *testing.T) {
	res := carrier.Assemble(carrier.Draft{
		Events: []domain.ShipmentEvent{
			{Timestamp: at(5, 12), Description: "Delivered", Code: "DL"},
			{Timestamp: at(6, 12), Description: "Delivered again", Code: "DL"},
		},
	}, codes, carrier.Options{})

	require.Equal(t, at(6, 12), *res.DeliveredAt)
}

func TestAssemble_ExactCodeMatching(t *testing.T) {
	res := carrier.Assemble(carrier.Draft{
		Events: []domain.ShipmentEvent{
			{Timestamp: at(5, 12), Description: "DL attempted", Code: "DLA"},
			{Timestamp: at(5, 13), Description: "delivered", Code: "dl"},
		},
	}, codes, carrier.Options{})

	require.Nil(t, res.DeliveredAt)
}

func TestAssemble_DropsEmptyDescriptionsAndAddresses(t *testing.T) {
	res := carrier.Assemble(carrier.Draft{
		Events: []domain.ShipmentEvent{
			{Timestamp: at(5, 12), Description: "   ", Code: "DL"},
			{Timestamp: at(5, 13), Description: "Arrived", Address: &domain.Address{}},
		},
	}, codes, carrier.Options{})

	require.Len(t, res.Events, 1)
	require.Nil(t, res.Events[0].Address)
	require.Nil(t, res.DeliveredAt)
}

func TestAssemble_StableForEqualInstants(t *testing.T) {
	res := carrier.Assemble(carrier.Draft{
		Events: []domain.ShipmentEvent{
			{Timestamp: at(5, 12), Description: "first"},
			{Timestamp: at(5, 12), Description: "second"},
		},
	}, codes, carrier.Options{})

	require.Equal(t, "first", res.Events[0].Description)
	require.Equal(t, "second", res.Events[1].Description)
}

func TestAssemble_ConvertsToUTC(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	res := carrier.Assemble(carrier.Draft{
		Events: []domain.ShipmentEvent{
			{Timestamp: time.Date(2024, time.March, 5, 7, 0, 0, 0, ny), Description: "Arrived"},
		},
	}, codes, carrier.Options{})

	require.Equal(t, time.UTC, res.Events[0].Timestamp.Location())
	require.Equal(t, at(5, 12), res.Events[0].Timestamp)
}

func TestEmpty(t *testing.T) {
	raw := domain.Raw{ContentType: "application/json", Body: []byte(`{"errors":[]}`)}
	res := carrier.Empty(carrier.Draft{Carrier: domain.CarrierUPS, Provider: "ups", Raw: raw})

	require.NotNil(t, res.Events)
	require.Empty(t, res.Events)
	require.Equal(t, raw, res.Raw)
	require.Nil(t, res.DeliveredAt)
}

func TestPromoFilter_Strip(t *testing.T) {
	deny := carrier.NewPromoFilter("DHL ECOMMERCE", "DHL GLOBAL MAIL")

	require.Equal(t, "Memphis", deny.Strip("DHL eCommerce - Memphis"))
	require.Equal(t, "Atlanta", deny.Strip("Atlanta dhl global mail"))
	require.Equal(t, "Salt Lake City", deny.Strip("  Salt Lake City "))
	require.Equal(t, "", deny.Strip("DHL ECOMMERCE"))
	require.Equal(t, "Denver", carrier.NewPromoFilter().Strip("Denver"))
	require.Equal(t, "Denver", carrier.NewPromoFilter("").Strip("Denver"))
	require.Equal(t, "a.b", carrier.NewPromoFilter("X+").Strip("a.bx+"))
}

func TestPromoFilter_StripMultiByte(t *testing.T) {
	deny := carrier.NewPromoFilter("DHL ECS", "UPS MI")

	tests := []struct {
		in   string
		want string
	}{
		// U+017F upper-cases to a one-byte "S"
		{in: "ſt. Louis DHL ECS", want: "ſt. Louis"},
		{in: "Leipzig dhl ecſ", want: "Leipzig"},
		{in: "Zürich - DHL ECS", want: "Zürich"},
		{in: "ups mı Ärhus", want: "ups mı Ärhus"},
		{in: "São Paulo, UPS MI", want: "São Paulo"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := deny.Strip(tt.in)
			require.True(t, utf8.ValidString(got), "%q", got)
			require.Equal(t, tt.want, got)
		})
	}
}
