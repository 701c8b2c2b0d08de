package catalog

import (
	"fmt"
	"sort"

	"region-catalog-go/pkg/model"
)

// Catalog is the immutable in-memory region collection. It is built once at
// process start, validated on construction, and shared read-only by every
// request; no query path ever mutates it, so reads need no synchronization.
type Catalog struct {
	regions []model.Region
	byID    map[string]model.Region
}

// New validates the loaded records and builds the catalog. A dataset that
// violates the record invariants is rejected outright: serving a partial or
// malformed catalog silently is worse than refusing to start.
func New(regions []model.Region) (*Catalog, error) {
	byID := make(map[string]model.Region, len(regions))
	for _, r := range regions {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("region %q: %w", r.ID, err)
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate region id %q", r.ID)
		}
		byID[r.ID] = r
	}
	// Hold the records in id order so listings are deterministic no matter
	// which loader produced them.
	sorted := make([]model.Region, len(regions))
	copy(sorted, regions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &Catalog{regions: sorted, byID: byID}, nil
}

func validate(r model.Region) error {
	if r.ID == "" {
		return fmt.Errorf("missing id")
	}
	if r.Provider != model.ProviderAWS && r.Provider != model.ProviderAzure {
		return fmt.Errorf("unknown provider %q", r.Provider)
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", r.Latitude)
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", r.Longitude)
	}
	for _, e := range r.VaultEntries() {
		if e.Tier != model.TierCore && e.Tier != model.TierNonCore {
			return fmt.Errorf("vault entry has unknown tier %q", e.Tier)
		}
		if e.Edition != model.EditionFoundation && e.Edition != model.EditionAdvanced {
			return fmt.Errorf("vault entry has unknown edition %q", e.Edition)
		}
	}
	return nil
}

// Regions returns every record. The slice is shared; callers must treat it
// as read-only.
func (c *Catalog) Regions() []model.Region {
	return c.regions
}

// Get looks up a single region by id.
func (c *Catalog) Get(id string) (model.Region, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Len reports the number of regions in the catalog.
func (c *Catalog) Len() int {
	return len(c.regions)
}
