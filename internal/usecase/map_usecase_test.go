package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findhere/internal/domain/discovery"
	"findhere/internal/domain/entity"
	"findhere/pkg/errors"
)

func placed(id string, lat, lon float64) *entity.Listing {
	l := activeListing(id, "alice", 0)
	l.Latitude = floatPtr(lat)
	l.Longitude = floatPtr(lon)
	return l
}

func newMap(listings ...*entity.Listing) *MapUseCase {
	browse := newBrowse(newFakeListingRepo(listings...), newFakeProfileRepo(), nil)
	return NewMapUseCase(browse, discovery.DefaultReference)
}

func TestNearbyRanksFromReference(t *testing.T) {
	uc := newMap(
		placed("noida", 28.5355, 77.3910),
		placed("model-town", 28.7041, 77.1025),
		activeListing("no-coords", "alice", time.Minute),
	)

	ref := discovery.Point{Lat: 28.6139, Lon: 77.2090}
	res, err := uc.Nearby(context.Background(), NearbyInput{Reference: &ref})
	require.NoError(t, err)

	assert.False(t, res.UsedDefault)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Listings, 2)
	assert.Equal(t, "model-town", res.Listings[0].ID)
	assert.Equal(t, 14.4, res.Listings[0].DistanceKm)
	assert.Equal(t, "noida", res.Listings[1].ID)
	assert.NotEmpty(t, res.Listings[0].Geohash)
}

func TestNearbyFallsBackToDefaultReference(t *testing.T) {
	uc := newMap(placed("a", 28.6139, 77.2090))

	res, err := uc.Nearby(context.Background(), NearbyInput{})
	require.NoError(t, err)
	assert.True(t, res.UsedDefault)
	assert.Equal(t, discovery.DefaultReference, res.Reference)
	assert.Equal(t, 0.0, res.Listings[0].DistanceKm)

	bad := discovery.Point{Lat: 120, Lon: 0}
	res, err = uc.Nearby(context.Background(), NearbyInput{Reference: &bad})
	require.NoError(t, err)
	assert.True(t, res.UsedDefault)
	assert.Equal(t, discovery.DefaultReference, res.Reference)
}

func TestNearbyRadiusAndLimit(t *testing.T) {
	uc := newMap(
		placed("here", 28.6139, 77.2090),
		placed("model-town", 28.7041, 77.1025),
		placed("noida", 28.5355, 77.3910),
	)

	res, err := uc.Nearby(context.Background(), NearbyInput{RadiusKm: 15})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	res, err = uc.Nearby(context.Background(), NearbyInput{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Listings, 1)
	assert.Equal(t, "here", res.Listings[0].ID)
}

func TestNearbyAppliesFilters(t *testing.T) {
	rent := placed("rent", 28.7041, 77.1025)
	rent.ListingType = entity.ListingTypeRent
	uc := newMap(placed("sell", 28.6139, 77.2090), rent)

	res, err := uc.Nearby(context.Background(), NearbyInput{Params: discovery.Params{Type: entity.ListingTypeRent}})
	require.NoError(t, err)
	require.Len(t, res.Listings, 1)
	assert.Equal(t, "rent", res.Listings[0].ID)

	_, err = uc.Nearby(context.Background(), NearbyInput{Params: discovery.Params{PriceRange: "bogus"}})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestNewMapUseCaseRejectsInvalidFallback(t *testing.T) {
	uc := NewMapUseCase(newBrowse(newFakeListingRepo(), newFakeProfileRepo(), nil), discovery.Point{Lat: 200})
	res, err := uc.Nearby(context.Background(), NearbyInput{})
	require.NoError(t, err)
	assert.Equal(t, discovery.DefaultReference, res.Reference)
	assert.NotNil(t, res.Listings)
}

func TestClusters(t *testing.T) {
	uc := newMap(
		placed("a", 28.6139, 77.2090),
		placed("b", 28.6140, 77.2091),
		placed("far", 28.5355, 77.3910),
	)

	res, err := uc.Clusters(context.Background(), nil, 0, discovery.Params{})
	require.NoError(t, err)
	assert.Equal(t, discovery.DefaultClusterPrecision, res.Precision)
	require.Len(t, res.Clusters, 2)
	assert.Equal(t, 2, res.Clusters[0].Count)

	res, err = uc.Clusters(context.Background(), nil, 1, discovery.Params{})
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)
	assert.Equal(t, 3, res.Clusters[0].Count)
}

func TestClustersEmptyCatalog(t *testing.T) {
	res, err := newMap().Clusters(context.Background(), nil, 3, discovery.Params{})
	require.NoError(t, err)
	assert.NotNil(t, res.Clusters)
	assert.Empty(t, res.Clusters)
}
