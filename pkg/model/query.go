package model

// NearestQuery is the normalized, validated form of a nearest-region
// request. It is echoed back verbatim in the response so automated callers
// can see exactly which constraints were applied, including a capped limit.
type NearestQuery struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Provider *string `json:"provider"`
	Service  *string `json:"service"`
	Tier     *string `json:"tier"`
	Edition  *string `json:"edition"`
	Limit    int     `json:"limit"`
}

// ListQuery is the validated form of a catalog listing request.
type ListQuery struct {
	Provider *string `json:"provider"`
	Service  *string `json:"service"`
}

// Distance carries a great-circle distance in both units, rounded to two
// decimal places at response-shaping time.
type Distance struct {
	Km    float64 `json:"km"`
	Miles float64 `json:"miles"`
}

// NearestResult pairs a matching region with its distance from the query
// point.
type NearestResult struct {
	Region   Region   `json:"region"`
	Distance Distance `json:"distance"`
}

// NearestResponse is the 200 envelope for /regions/nearest. Count is the
// post-filter, post-limit result length; an empty match set is a valid
// response, not an error.
type NearestResponse struct {
	Query   NearestQuery    `json:"query"`
	Results []NearestResult `json:"results"`
	Count   int             `json:"count"`
}

// ListResponse is the 200 envelope for /regions.
type ListResponse struct {
	Query   ListQuery `json:"query"`
	Regions []Region  `json:"regions"`
	Count   int       `json:"count"`
}

// CodeInvalidParameter is the machine-readable code carried by every
// validation failure.
const CodeInvalidParameter = "INVALID_PARAMETER"

// ParameterError is the structured 400 body. Every rejection names the
// offending parameter, echoes the submitted value, and lists the allowed
// values where a finite set exists, so callers never need documentation to
// resolve a failure.
type ParameterError struct {
	Error         string   `json:"error"`
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	Parameter     string   `json:"parameter"`
	Value         *string  `json:"value"`
	AllowedValues []string `json:"allowedValues,omitempty"`
}

// NotFoundError is the structured 404 body for unknown region ids.
type NotFoundError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
