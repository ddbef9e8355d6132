package discovery

import (
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"

	"findhere/internal/domain/entity"
)

const EarthRadiusKm = 6371.0

// GeohashPrecision is the cell size attached to ranked listings (~1.2 km).
const GeohashPrecision = 6

// Point is a WGS 84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DefaultReference is used whenever the viewer's position is unavailable.
var DefaultReference = Point{Lat: 28.6139, Lon: 77.2090}

func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// ResolveReference returns p, or fallback when p is missing or out of range.
func ResolveReference(p *Point, fallback Point) Point {
	if p == nil || !p.Valid() {
		return fallback
	}
	return *p
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RoundKm rounds to one decimal, the precision shown next to a listing.
func RoundKm(d float64) float64 {
	return math.Round(d*10) / 10
}

type Ranked struct {
	Listing    *entity.Listing
	DistanceKm float64
	Geohash    string
}

// RankByDistance annotates every listing that has both coordinates with its
// distance from ref and returns them nearest first. Listings without a
// coordinate pair are left out. Equal distances keep input order.
func RankByDistance(ref Point, listings []*entity.Listing) []Ranked {
	ranked := make([]Ranked, 0, len(listings))
	for _, l := range listings {
		if l == nil || !l.HasCoordinates() {
			continue
		}
		pos := Point{Lat: *l.Latitude, Lon: *l.Longitude}
		ranked = append(ranked, Ranked{
			Listing:    l,
			DistanceKm: Haversine(ref, pos),
			Geohash:    geohash.EncodeWithPrecision(pos.Lat, pos.Lon, GeohashPrecision),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

// WithinRadius keeps the prefix of an already ranked slice closer than
// radiusKm. A non-positive radius keeps everything.
func WithinRadius(ranked []Ranked, radiusKm float64) []Ranked {
	if radiusKm <= 0 {
		return ranked
	}
	n := sort.Search(len(ranked), func(i int) bool {
		return ranked[i].DistanceKm > radiusKm
	})
	return ranked[:n]
}
