package discovery

import (
	"github.com/mmcloughlin/geohash"
)

const (
	MinClusterPrecision     = 1
	MaxClusterPrecision     = GeohashPrecision
	DefaultClusterPrecision = 5
)

// Cluster is a map marker standing for every ranked listing in one geohash cell.
type Cluster struct {
	Geohash    string   `json:"geohash"`
	Center     Point    `json:"center"`
	Count      int      `json:"count"`
	NearestKm  float64  `json:"nearest_km"`
	ListingIDs []string `json:"listing_ids"`
}

// ClusterByGeohash groups ranked listings by the first precision characters of
// their geohash. Clusters come out in the order their first member appears,
// so a distance-ranked input yields nearest clusters first.
func ClusterByGeohash(ranked []Ranked, precision int) []Cluster {
	if precision < MinClusterPrecision || precision > MaxClusterPrecision {
		precision = DefaultClusterPrecision
	}

	index := make(map[string]int)
	var clusters []Cluster

	for _, r := range ranked {
		if len(r.Geohash) < precision {
			continue
		}
		cell := r.Geohash[:precision]

		i, ok := index[cell]
		if !ok {
			lat, lon := geohash.DecodeCenter(cell)
			clusters = append(clusters, Cluster{
				Geohash:   cell,
				Center:    Point{Lat: lat, Lon: lon},
				NearestKm: RoundKm(r.DistanceKm),
			})
			i = len(clusters) - 1
			index[cell] = i
		}

		clusters[i].Count++
		clusters[i].ListingIDs = append(clusters[i].ListingIDs, r.Listing.ID)
	}

	return clusters
}
