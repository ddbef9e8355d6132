package discovery

import (
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findhere/internal/domain/entity"
)

func TestClusterByGeohash(t *testing.T) {
	homeLat, homeLon := geohash.DecodeCenter("ttnfvw")
	awayLat, awayLon := geohash.DecodeCenter("tsq4kw")

	listings := []*entity.Listing{
		newListing("away", coords(awayLat, awayLon)),
		newListing("home-1", coords(homeLat, homeLon)),
		newListing("home-2", coords(homeLat+0.0001, homeLon-0.0001)),
	}
	ranked := RankByDistance(Point{Lat: homeLat, Lon: homeLon}, listings)

	clusters := ClusterByGeohash(ranked, 5)
	require.Len(t, clusters, 2)

	assert.Equal(t, "ttnfv", clusters[0].Geohash)
	assert.Equal(t, 2, clusters[0].Count)
	assert.Equal(t, []string{"home-1", "home-2"}, clusters[0].ListingIDs)
	assert.Equal(t, 0.0, clusters[0].NearestKm)

	assert.Equal(t, "tsq4k", clusters[1].Geohash)
	assert.Equal(t, 1, clusters[1].Count)
	assert.Greater(t, clusters[1].NearestKm, 0.0)

	lat, lon := geohash.DecodeCenter("ttnfv")
	assert.InDelta(t, lat, clusters[0].Center.Lat, 1e-9)
	assert.InDelta(t, lon, clusters[0].Center.Lon, 1e-9)
}

func TestClusterByGeohashPrecisionBounds(t *testing.T) {
	lat, lon := geohash.DecodeCenter("ttnfvw")
	ranked := RankByDistance(connaughtPlace, []*entity.Listing{newListing("a", coords(lat, lon))})

	assert.Equal(t, "t", ClusterByGeohash(ranked, MinClusterPrecision)[0].Geohash)
	assert.Equal(t, "ttnfvw", ClusterByGeohash(ranked, MaxClusterPrecision)[0].Geohash)

	for _, p := range []int{0, -1, MaxClusterPrecision + 1} {
		clusters := ClusterByGeohash(ranked, p)
		require.Len(t, clusters, 1)
		assert.Len(t, clusters[0].Geohash, DefaultClusterPrecision)
	}
}

func TestClusterByGeohashEmpty(t *testing.T) {
	assert.Empty(t, ClusterByGeohash(nil, DefaultClusterPrecision))
}
