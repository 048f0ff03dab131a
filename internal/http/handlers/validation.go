package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/medicine-inventory/internal/dates"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
)

// param is the result of reading one query parameter. Present is false when
// the key is absent from the query string. Validation helpers return it
// with ok=false once they have written the 400 response, and the caller must
// stop processing the request.
type param[T any] struct {
	Value   T
	Present bool
}

type bounds struct {
	min, max int
}

var (
	limitBounds  = bounds{min: 1, max: 100}
	offsetBounds = bounds{min: 0, max: 100000}
)

func badRequest(w http.ResponseWriter, format string, args ...any) {
	response.Error(w, nil, response.BadRequest(fmt.Sprintf(format, args...)))
}

// rawInt parses a present parameter as a base-10 integer.
func rawInt(q url.Values, name string) (param[int], error) {
	if !q.Has(name) {
		return param[int]{}, nil
	}
	n, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return param[int]{}, err
	}
	return param[int]{Value: n, Present: true}, nil
}

// intParam reads an integer parameter within the inclusive bounds b.
func intParam(w http.ResponseWriter, q url.Values, name string, b bounds) (param[int], bool) {
	p, err := rawInt(q, name)
	if err != nil {
		badRequest(w, "%s must be an integer", name)
		return p, false
	}
	if !p.Present {
		return p, true
	}
	if p.Value < b.min {
		badRequest(w, "%s must be >= %d", name, b.min)
		return p, false
	}
	if p.Value > b.max {
		badRequest(w, "%s must be <= %d", name, b.max)
		return p, false
	}
	return p, true
}

// enumParam reads a parameter that must exactly match one of allowed.
func enumParam(w http.ResponseWriter, q url.Values, name string, allowed []string) (param[string], bool) {
	if !q.Has(name) {
		return param[string]{}, true
	}
	v := q.Get(name)
	if !slices.Contains(allowed, v) {
		badRequest(w, "%s must be one of: %s", name, strings.Join(allowed, ", "))
		return param[string]{}, false
	}
	return param[string]{Value: v, Present: true}, true
}

// dateParam reads a YYYY-MM-DD shaped parameter. Calendar validity is not
// checked.
func dateParam(w http.ResponseWriter, q url.Values, name string) (param[string], bool) {
	if !q.Has(name) {
		return param[string]{}, true
	}
	v := q.Get(name)
	if !dates.IsYYYYMMDD(v) {
		badRequest(w, "%s must be YYYY-MM-DD", name)
		return param[string]{}, false
	}
	return param[string]{Value: v, Present: true}, true
}

// dateRange rejects a range whose start is after its end.
func dateRange(w http.ResponseWriter, from, to param[string]) bool {
	if from.Present && to.Present && from.Value > to.Value {
		badRequest(w, "from must be <= to")
		return false
	}
	return true
}

// stringParam reads a free-text or equality filter. An empty value carries
// no filter and counts as absent.
func stringParam(q url.Values, name string) param[string] {
	v := q.Get(name)
	return param[string]{Value: v, Present: v != ""}
}
