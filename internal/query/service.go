package query

import (
	"net/url"

	"region-catalog-go/internal/catalog"
	"region-catalog-go/pkg/model"
)

// QueryService executes region queries against the immutable catalog. Each
// call is a pure computation over shared read-only data, so any number of
// calls may run concurrently without coordination.
type QueryService struct {
	catalog *catalog.Catalog
}

// NewQueryService creates a query service over the given catalog.
func NewQueryService(c *catalog.Catalog) *QueryService {
	return &QueryService{catalog: c}
}

// Nearest runs the full pipeline: validate, filter, score, rank, shape.
// A structured parameter error means nothing after validation ran; an empty
// match set is a normal response with count 0.
func (s *QueryService) Nearest(params url.Values) (*model.NearestResponse, *model.ParameterError) {
	q, perr := ValidateNearest(params)
	if perr != nil {
		return nil, perr
	}

	candidates := Filter(s.catalog.Regions(), Constraints{
		Provider: q.Provider,
		Service:  q.Service,
		Tier:     q.Tier,
		Edition:  q.Edition,
	})

	ranked := make([]scored, 0, len(candidates))
	for _, r := range candidates {
		ranked = append(ranked, scored{
			region: r,
			km:     Kilometers(q.Lat, q.Lng, r.Latitude, r.Longitude),
		})
	}
	ranked = sortAndLimit(ranked, q.Limit)

	results := make([]model.NearestResult, 0, len(ranked))
	for _, c := range ranked {
		results = append(results, model.NearestResult{
			Region: c.region,
			Distance: model.Distance{
				Km:    Round2(c.km),
				Miles: Round2(Miles(c.km)),
			},
		})
	}
	return &model.NearestResponse{Query: q, Results: results, Count: len(results)}, nil
}

// List returns the catalog, optionally narrowed by provider and service,
// ordered by region id.
func (s *QueryService) List(params url.Values) (*model.ListResponse, *model.ParameterError) {
	q, perr := ValidateList(params)
	if perr != nil {
		return nil, perr
	}
	filtered := Filter(s.catalog.Regions(), Constraints{
		Provider: q.Provider,
		Service:  q.Service,
	})
	regions := make([]model.Region, 0, len(filtered))
	regions = append(regions, filtered...)
	return &model.ListResponse{Query: q, Regions: regions, Count: len(regions)}, nil
}

// Get looks up one region by id.
func (s *QueryService) Get(id string) (model.Region, bool) {
	return s.catalog.Get(id)
}

// Size reports the catalog size, for the health endpoint.
func (s *QueryService) Size() int {
	return s.catalog.Len()
}
