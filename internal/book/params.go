package book

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultSort  = SortAsc
	DefaultPage  = 1
	DefaultLimit = 10
)

// ParseQuery turns raw listing parameters into validated QueryOptions.
// Missing or empty values take the defaults. Checks run sort, page, limit
// and the first failure is returned.
func ParseQuery(values url.Values) (QueryOptions, error) {
	sort := values.Get("sort")
	if sort == "" {
		sort = string(DefaultSort)
	}
	page, pageOK := parseInt(values.Get("page"), DefaultPage)
	limit, limitOK := parseInt(values.Get("limit"), DefaultLimit)

	if err := ValidateSort(sort); err != nil {
		return QueryOptions{}, err
	}
	if err := ValidatePagination(asNumber(page, pageOK), asNumber(limit, limitOK)); err != nil {
		return QueryOptions{}, err
	}

	return QueryOptions{
		Search: values.Get("search"),
		Sort:   Sort(strings.ToLower(sort)),
		Page:   page,
		Limit:  limit,
	}, nil
}

func parseInt(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}

// asNumber maps unparsable input to NaN so validation can reject it.
func asNumber(n int, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	return float64(n)
}
