package dto

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"hotel/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries pagination and ordering for list endpoints. A zero Page
// or Limit means unpaginated.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. Malformed or
// non-positive numbers are ignored and limit is capped at MaxValueLimit. With
// withDefaults the first page of DefaultValueLimit rows is used when the
// client asks for nothing.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	if page, ok := positiveParam(query, constant.RequestParamPage); ok {
		q.Page = page
	}

	if limit, ok := positiveParam(query, constant.RequestParamLimit); ok {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := strings.TrimSpace(query.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Offset is the number of rows skipped before the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// RestrictSort keeps SortBy only when it names one of the allowed columns,
// falling back to newest first, and qualifies it with table.
func (q *QueryParams) RestrictSort(table string, allowed ...string) {
	if !slices.Contains(allowed, q.SortBy) {
		q.SortBy = constant.DefaultValueSortBy
		q.SortDir = constant.DefaultValueSortDir
	}

	if q.SortDir == "" {
		q.SortDir = SortDirAsc
	}

	q.SortBy = table + "." + q.SortBy
}

func positiveParam(query url.Values, key string) (int, bool) {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil || value <= 0 {
		return 0, false
	}

	return value, true
}
