package timezone_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	"tracker/pkg/serrors"
	"tracker/pkg/timezone"
	mocktimezone "tracker/pkg/timezone/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_ResolveLocality(t *testing.T) {
	ctrl := gomock.NewController(t)
	geo := mocktimezone.NewMockGeocoder(ctrl)
	r := timezone.NewResolver(geo, 2)

	geo.EXPECT().Geocode(gomock.Any(), "NEW YORK NY").Return(timezone.Locality{
		City:     "New York",
		State:    "NY",
		Country:  "US",
		Timezone: "America/New_York",
	}, nil)

	loc, ok := r.ResolveLocality(context.Background(), "  new york   ny ")
	require.True(t, ok)
	require.Equal(t, "New York", loc.City)
	require.Equal(t, "NY", loc.State)
	require.Equal(t, "America/New_York", loc.Timezone)
}

func TestResolver_ResolveLocality_FillsTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	geo := mocktimezone.NewMockGeocoder(ctrl)
	r := timezone.NewResolver(geo, 0)

	geo.EXPECT().Geocode(gomock.Any(), "DENVER CO").Return(timezone.Locality{City: "Denver", State: "CO", Timezone: "MT"}, nil)
	geo.EXPECT().Geocode(gomock.Any(), "NOWHERE").Return(timezone.Locality{City: "Nowhere"}, nil)

	loc, ok := r.ResolveLocality(context.Background(), "Denver CO")
	require.True(t, ok)
	require.Equal(t, "America/Denver", loc.Timezone)

	loc, ok = r.ResolveLocality(context.Background(), "Nowhere")
	require.True(t, ok)
	require.Equal(t, timezone.DefaultTimezone, loc.Timezone)
}

func TestResolver_ResolveLocality_Degrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	geo := mocktimezone.NewMockGeocoder(ctrl)
	r := timezone.NewResolver(geo, 1)

	geo.EXPECT().Geocode(gomock.Any(), "ATLANTIS").Return(timezone.Locality{}, serrors.KindOnly(serrors.ErrNotFound))
	geo.EXPECT().Geocode(gomock.Any(), "BOOM").Return(timezone.Locality{}, errors.New("geocoder down"))

	_, ok := r.ResolveLocality(context.Background(), "Atlantis")
	require.False(t, ok)
	_, ok = r.ResolveLocality(context.Background(), "boom")
	require.False(t, ok)

	// blank input never reaches the geocoder
	_, ok = r.ResolveLocality(context.Background(), "   ")
	require.False(t, ok)
}

func TestResolver_NilGeocoder(t *testing.T) {
	r := timezone.NewResolver(nil, 1)
	_, ok := r.ResolveLocality(context.Background(), "Chicago IL")
	require.False(t, ok)
	require.Empty(t, r.ResolveAll(context.Background(), []string{"Chicago IL"}))
}

func TestResolver_ResolveAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	geo := mocktimezone.NewMockGeocoder(ctrl)
	r := timezone.NewResolver(geo, 2)

	geo.EXPECT().Geocode(gomock.Any(), "CHICAGO IL").Return(timezone.Locality{City: "Chicago", State: "IL", Timezone: "America/Chicago"}, nil).Times(1)
	geo.EXPECT().Geocode(gomock.Any(), "DALLAS TX").Return(timezone.Locality{}, errors.New("timeout")).Times(1)
	geo.EXPECT().Geocode(gomock.Any(), "SEATTLE WA").Return(timezone.Locality{City: "Seattle", State: "WA", Timezone: "America/Los_Angeles"}, nil).Times(1)

	got := r.ResolveAll(context.Background(), []string{"Chicago IL", "chicago  il", "Dallas TX", "Seattle WA", ""})

	require.Len(t, got, 3)
	require.Equal(t, "Chicago", got["Chicago IL"].City)
	require.Equal(t, "Chicago", got["chicago  il"].City)
	require.Equal(t, "America/Los_Angeles", got["Seattle WA"].Timezone)
	_, ok := got["Dallas TX"]
	require.False(t, ok)
}

type slowGeocoder struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (g *slowGeocoder) Geocode(_ context.Context, text string) (timezone.Locality, error) {
	n := g.inFlight.Add(1)
	defer g.inFlight.Add(-1)
	for {
		p := g.peak.Load()
		if n <= p || g.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)

	return timezone.Locality{City: text, Timezone: "UTC"}, nil
}

func TestResolver_ResolveAll_BoundedConcurrency(t *testing.T) {
	geo := &slowGeocoder{}
	r := timezone.NewResolver(geo, 3)

	texts := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	got := r.ResolveAll(context.Background(), texts)

	require.Len(t, got, len(texts))
	require.LessOrEqual(t, geo.peak.Load(), int32(3))
}
