package query

import (
	"sort"

	"region-catalog-go/pkg/model"
)

// scored pairs a candidate region with its full-precision distance.
type scored struct {
	region model.Region
	km     float64
}

// sortAndLimit orders candidates by ascending raw kilometers with a
// lexicographic region-id tie-break on exactly equal distances, then
// truncates. The full set is always sorted before truncation so equal
// distances can never produce a different cut under the same catalog;
// repeated queries yield byte-identical orderings, which snapshot-testing
// consumers depend on.
func sortAndLimit(candidates []scored, limit int) []scored {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].km == candidates[j].km {
			return candidates[i].region.ID < candidates[j].region.ID
		}
		return candidates[i].km < candidates[j].km
	})
	if limit > 0 && limit < len(candidates) {
		return candidates[:limit]
	}
	return candidates
}
