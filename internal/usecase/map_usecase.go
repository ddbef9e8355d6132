package usecase

import (
	"context"

	"findhere/internal/domain/discovery"
	"findhere/internal/domain/entity"
)

const (
	DefaultNearbyLimit = 50
	MaxNearbyLimit     = 200
)

type MapUseCase struct {
	browse   *BrowseUseCase
	fallback discovery.Point
}

// NewMapUseCase uses fallback whenever the caller's position is unusable. An
// invalid fallback is replaced with discovery.DefaultReference.
func NewMapUseCase(browse *BrowseUseCase, fallback discovery.Point) *MapUseCase {
	if !fallback.Valid() {
		fallback = discovery.DefaultReference
	}
	return &MapUseCase{browse: browse, fallback: fallback}
}

type NearbyInput struct {
	Reference *discovery.Point
	RadiusKm  float64
	Limit     int
	Params    discovery.Params
}

type NearbyListing struct {
	*entity.Listing
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash"`
}

type NearbyResult struct {
	Reference   discovery.Point `json:"reference"`
	UsedDefault bool            `json:"used_default_location"`
	Total       int             `json:"total"`
	Listings    []NearbyListing `json:"listings"`
}

func (uc *MapUseCase) reference(p *discovery.Point) (discovery.Point, bool) {
	ref := discovery.ResolveReference(p, uc.fallback)
	usedDefault := p == nil || !p.Valid()
	return ref, usedDefault
}

// ranked filters the catalog with params, then orders what is left by
// distance from ref.
func (uc *MapUseCase) ranked(ctx context.Context, ref discovery.Point, params discovery.Params) ([]discovery.Ranked, error) {
	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	catalog := uc.browse.LoadCatalog(ctx)
	return discovery.RankByDistance(ref, discovery.Apply(catalog.Listings, params)), nil
}

func (uc *MapUseCase) Nearby(ctx context.Context, input NearbyInput) (*NearbyResult, error) {
	ref, usedDefault := uc.reference(input.Reference)

	ranked, err := uc.ranked(ctx, ref, input.Params)
	if err != nil {
		return nil, err
	}
	ranked = discovery.WithinRadius(ranked, input.RadiusKm)
	total := len(ranked)

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultNearbyLimit
	}
	if limit > MaxNearbyLimit {
		limit = MaxNearbyLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	listings := make([]NearbyListing, len(ranked))
	for i, r := range ranked {
		listings[i] = NearbyListing{
			Listing:    r.Listing,
			DistanceKm: discovery.RoundKm(r.DistanceKm),
			Geohash:    r.Geohash,
		}
	}

	return &NearbyResult{
		Reference:   ref,
		UsedDefault: usedDefault,
		Total:       total,
		Listings:    listings,
	}, nil
}

type ClusterResult struct {
	Reference   discovery.Point     `json:"reference"`
	UsedDefault bool                `json:"used_default_location"`
	Precision   int                 `json:"precision"`
	Clusters    []discovery.Cluster `json:"clusters"`
}

func (uc *MapUseCase) Clusters(ctx context.Context, reference *discovery.Point, precision int, params discovery.Params) (*ClusterResult, error) {
	ref, usedDefault := uc.reference(reference)

	ranked, err := uc.ranked(ctx, ref, params)
	if err != nil {
		return nil, err
	}

	if precision < discovery.MinClusterPrecision || precision > discovery.MaxClusterPrecision {
		precision = discovery.DefaultClusterPrecision
	}

	clusters := discovery.ClusterByGeohash(ranked, precision)
	if clusters == nil {
		clusters = []discovery.Cluster{}
	}

	return &ClusterResult{
		Reference:   ref,
		UsedDefault: usedDefault,
		Precision:   precision,
		Clusters:    clusters,
	}, nil
}
