package locality_test

import (
	"context"
	"errors"
	"testing"
	"tracker/pkg/locality"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"
	mockstorage "tracker/pkg/storage/mock"
	"tracker/pkg/timezone"
	mocktimezone "tracker/pkg/timezone/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCandidates(t *testing.T) {
	require.Equal(t, []string{"NEW YORK, NY - USA", "NEW YORK, NY"}, locality.Candidates("New York, NY - USA"))
	require.Equal(t, []string{"ATLANTA, GA US", "ATLANTA, GA"}, locality.Candidates(" atlanta,  GA US"))
	require.Equal(t, []string{"LEIPZIG - GERMANY"}, locality.Candidates("Leipzig - Germany"))
	require.Equal(t, []string{"US"}, locality.Candidates("US"))
	require.Nil(t, locality.Candidates("   "))
}

var newYork = timezone.Locality{City: "New York", State: "NY", Country: "US", Timezone: "America/New_York"}

func TestGazetteer_Geocode(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockLocalityStorage(ctrl)
	g := locality.NewGazetteer(store)
	ctx := context.Background()

	store.EXPECT().LocalitiesByKeys(ctx, "NEW YORK, NY - USA", "NEW YORK, NY").
		Return(map[string]storage.LocalityRecord{"NEW YORK, NY": {SearchKey: "NEW YORK, NY", Locality: newYork}}, nil)
	loc, err := g.Geocode(ctx, "New York, NY - USA")
	require.NoError(t, err)
	require.Equal(t, newYork, loc)

	store.EXPECT().LocalitiesByKeys(ctx, "NOWHERE").Return(map[string]storage.LocalityRecord{}, nil)
	_, err = g.Geocode(ctx, "nowhere")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	store.EXPECT().LocalitiesByKeys(ctx, "BROKEN").Return(nil, errors.New("connection refused"))
	_, err = g.Geocode(ctx, "broken")
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	_, err = g.Geocode(ctx, "")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCached_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockLocalityStorage(ctrl)
	remote := mocktimezone.NewMockGeocoder(ctrl)
	ctx := context.Background()

	store.EXPECT().LocalitiesByKeys(ctx, "NEW YORK NY").
		Return(map[string]storage.LocalityRecord{"NEW YORK NY": {Locality: newYork}}, nil)

	loc, err := locality.NewCached(store, remote).Geocode(ctx, "new york ny")
	require.NoError(t, err)
	require.Equal(t, newYork, loc)
}

func TestCached_MissStoresRemoteResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockLocalityStorage(ctrl)
	remote := mocktimezone.NewMockGeocoder(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		store.EXPECT().LocalitiesByKeys(ctx, "NEW YORK NY").Return(map[string]storage.LocalityRecord{}, nil),
		remote.EXPECT().Geocode(ctx, "new york ny").Return(newYork, nil),
		store.EXPECT().StoreLocalities(ctx, storage.LocalityRecord{
			SearchKey: "NEW YORK NY",
			Locality:  newYork,
			Source:    storage.SourceGeocoder,
		}).Return(int64(1), nil),
	)

	loc, err := locality.NewCached(store, remote).Geocode(ctx, "new york ny")
	require.NoError(t, err)
	require.Equal(t, newYork, loc)
}

func TestCached_DegradesWithoutStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockLocalityStorage(ctrl)
	remote := mocktimezone.NewMockGeocoder(ctrl)
	ctx := context.Background()

	store.EXPECT().LocalitiesByKeys(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))
	remote.EXPECT().Geocode(ctx, "new york ny").Return(newYork, nil)
	store.EXPECT().StoreLocalities(ctx, gomock.Any()).Return(int64(0), errors.New("connection refused"))

	loc, err := locality.NewCached(store, remote).Geocode(ctx, "new york ny")
	require.NoError(t, err)
	require.Equal(t, newYork, loc)
}

func TestCached_RemoteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockLocalityStorage(ctrl)
	remote := mocktimezone.NewMockGeocoder(ctrl)
	ctx := context.Background()

	store.EXPECT().LocalitiesByKeys(ctx, gomock.Any()).Return(map[string]storage.LocalityRecord{}, nil)
	remote.EXPECT().Geocode(ctx, "atlantis").Return(timezone.Locality{}, serrors.KindOnly(serrors.ErrNotFound))

	_, err := locality.NewCached(store, remote).Geocode(ctx, "atlantis")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
