package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"region-catalog-go/pkg/model"
)

// DefaultLimit applies when the caller omits limit; MaxLimit is the cap for
// positive values. Limit 0 is a sentinel meaning "return every match".
const (
	DefaultLimit = 5
	MaxLimit     = 20
)

// enumConstraints is the single declarative table of enumerated query
// parameters. Both the nearest and listing validators walk it, so the
// allowed sets cannot drift between endpoints.
var enumConstraints = []struct {
	name    string
	allowed func() []string
}{
	{"provider", model.Providers},
	{"service", model.KnownServices},
	{"tier", model.Tiers},
	{"edition", model.Editions},
}

// crossFieldRules: tier and edition are vault-only refinements. Supplying
// either without service=vdc_vault would otherwise be a silent no-op filter,
// so it is rejected outright.
var crossFieldRules = []struct {
	name string
}{
	{"tier"},
	{"edition"},
}

// invalidParam builds the structured rejection for one parameter. Matching
// is exact and case-sensitive throughout; values are never trimmed or
// normalized before comparison.
func invalidParam(parameter string, value *string, message string, allowed ...string) *model.ParameterError {
	return &model.ParameterError{
		Error:         "invalid parameter",
		Code:          model.CodeInvalidParameter,
		Message:       message,
		Parameter:     parameter,
		Value:         value,
		AllowedValues: allowed,
	}
}

// first returns the first value supplied for the parameter and whether it
// was supplied at all.
func first(params url.Values, name string) (string, bool) {
	vs, ok := params[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// parseCoordinate enforces presence, numeric parse, finiteness, and range.
func parseCoordinate(params url.Values, name string, min, max float64) (float64, *model.ParameterError) {
	raw, ok := first(params, name)
	if !ok {
		msg := fmt.Sprintf("%s is required and must be a number between %g and %g", name, min, max)
		return 0, invalidParam(name, nil, msg)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		msg := fmt.Sprintf("%s must be a finite number between %g and %g", name, min, max)
		return 0, invalidParam(name, &raw, msg)
	}
	if v < min || v > max {
		msg := fmt.Sprintf("%s must be between %g and %g", name, min, max)
		return 0, invalidParam(name, &raw, msg)
	}
	return v, nil
}

// validateEnums checks every supplied enumerated parameter against the
// constraint table, in table order, and returns the normalized values keyed
// by parameter name. Only parameters named in accept are considered known.
func validateEnums(params url.Values, accept ...string) (map[string]*string, *model.ParameterError) {
	out := make(map[string]*string, len(accept))
	for _, c := range enumConstraints {
		if !contains(accept, c.name) {
			continue
		}
		raw, ok := first(params, c.name)
		if !ok {
			continue
		}
		allowed := c.allowed()
		if !contains(allowed, raw) {
			msg := fmt.Sprintf("%s must be one of: %s", c.name, strings.Join(allowed, ", "))
			return nil, invalidParam(c.name, &raw, msg, allowed...)
		}
		v := raw
		out[c.name] = &v
	}
	return out, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ValidateNearest turns raw query parameters into a normalized NearestQuery,
// or the first structured rejection in validation order: coordinates,
// provider, service, tier, edition, cross-field tier/edition rule, limit.
// Fail-fast: exactly one error is ever reported per call.
func ValidateNearest(params url.Values) (model.NearestQuery, *model.ParameterError) {
	var q model.NearestQuery

	lat, perr := parseCoordinate(params, "lat", -90, 90)
	if perr != nil {
		return q, perr
	}
	lng, perr := parseCoordinate(params, "lng", -180, 180)
	if perr != nil {
		return q, perr
	}
	q.Lat, q.Lng = lat, lng

	values, perr := validateEnums(params, "provider", "service", "tier", "edition")
	if perr != nil {
		return q, perr
	}
	q.Provider = values["provider"]
	q.Service = values["service"]
	q.Tier = values["tier"]
	q.Edition = values["edition"]

	for _, rule := range crossFieldRules {
		v := values[rule.name]
		if v == nil {
			continue
		}
		if q.Service == nil || *q.Service != model.ServiceVault {
			msg := fmt.Sprintf("%s may only be supplied together with service=%s", rule.name, model.ServiceVault)
			return q, invalidParam(rule.name, v, msg)
		}
	}

	limit, perr := parseLimit(params)
	if perr != nil {
		return q, perr
	}
	q.Limit = limit
	return q, nil
}

// ValidateList validates the catalog listing parameters with the same
// constraint table as the nearest endpoint.
func ValidateList(params url.Values) (model.ListQuery, *model.ParameterError) {
	var q model.ListQuery
	values, perr := validateEnums(params, "provider", "service")
	if perr != nil {
		return q, perr
	}
	q.Provider = values["provider"]
	q.Service = values["service"]
	return q, nil
}

// parseLimit applies the recorded product decision for out-of-range limits:
// values above MaxLimit are capped, not rejected, and the capped value is
// echoed back in the response query so callers can detect it.
func parseLimit(params url.Values) (int, *model.ParameterError) {
	raw, ok := first(params, "limit")
	if !ok {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, invalidParam("limit", &raw, "limit must be a non-negative integer (0 returns all matches)")
	}
	if n > MaxLimit {
		return MaxLimit, nil
	}
	return n, nil
}
