package stackdriver

import (
	"net/url"
	"strconv"
)

// QueryParams expresses the query string options accepted by list endpoints.
type QueryParams struct {
	// Page selects a result page when the endpoint paginates.
	Page int
	// Count limits the number of results per page.
	Count int
	// Filters holds endpoint-specific filter parameters, passed through
	// verbatim (e.g. "cluster" for instances).
	Filters map[string][]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithCount sets the per-page result count.
func (q *QueryParams) WithCount(count int) *QueryParams {
	q.Count = count

	return q
}

// WithFilter adds values for a filter parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.Count > 0 {
		values.Set("count", strconv.Itoa(q.Count))
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}
