package query

import "region-catalog-go/pkg/model"

// Constraints are the optional filters of a validated query. A nil field
// imposes no restriction; supplied fields compose with logical AND.
type Constraints struct {
	Provider *string
	Service  *string
	Tier     *string
	Edition  *string
}

type predicate func(model.Region) bool

// chain builds the predicate list for the supplied constraints. The tier
// and edition predicates are only built when the service is the vault
// service; the validator guarantees that pairing before this code runs.
func chain(c Constraints) []predicate {
	var preds []predicate
	if c.Provider != nil {
		p := model.Provider(*c.Provider)
		preds = append(preds, func(r model.Region) bool { return r.Provider == p })
	}
	if c.Service != nil {
		svc := *c.Service
		preds = append(preds, func(r model.Region) bool { return r.HasService(svc) })
	}
	if c.Tier != nil {
		tier := *c.Tier
		preds = append(preds, func(r model.Region) bool { return matchesTier(r, tier) })
	}
	if c.Edition != nil {
		edition := *c.Edition
		preds = append(preds, func(r model.Region) bool { return matchesEdition(r, edition) })
	}
	return preds
}

// matchesTier: some vault entry has the requested tier. Independent of
// matchesEdition: when both tier and edition are supplied, they may be
// satisfied by different entries within the same region. Pending product
// confirmation of the combined-entry interpretation.
func matchesTier(r model.Region, tier string) bool {
	for _, e := range r.VaultEntries() {
		if e.Tier == tier {
			return true
		}
	}
	return false
}

// matchesEdition: some vault entry has the requested edition.
func matchesEdition(r model.Region, edition string) bool {
	for _, e := range r.VaultEntries() {
		if e.Edition == edition {
			return true
		}
	}
	return false
}

// Filter returns the regions satisfying every supplied constraint. The
// result order carries no meaning; ranking is a separate stage.
func Filter(regions []model.Region, c Constraints) []model.Region {
	preds := chain(c)
	if len(preds) == 0 {
		return regions
	}
	var out []model.Region
Regions:
	for _, r := range regions {
		for _, p := range preds {
			if !p(r) {
				continue Regions
			}
		}
		out = append(out, r)
	}
	return out
}
