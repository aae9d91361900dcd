package query

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is the raw-value source a Descriptor is parsed from, typically
// url.Values or gin's query map.
type Params interface {
	Get(key string) string
}

// Descriptor is a validated list query. Parse never fails; garbage input
// degrades to the defaults, so a Descriptor is always safe to hand to a
// repository.
type Descriptor struct {
	Page     int
	Limit    int
	Skip     int
	Search   string
	Category string
}

// Parse reads pagination and filter parameters into a Descriptor.
// page defaults to 1, limit defaults to DefaultLimit and is clamped to
// [1, MaxLimit]; skip is always (page-1)*limit. A category of "all" means
// no category filter.
func Parse(params Params) Descriptor {
	page, err := strconv.Atoi(params.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(params.Get("limit"))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	category := strings.TrimSpace(params.Get("category"))
	if strings.EqualFold(category, "all") {
		category = ""
	}

	return Descriptor{
		Page:     page,
		Limit:    limit,
		Skip:     (page - 1) * limit,
		Search:   strings.TrimSpace(params.Get("search")),
		Category: category,
	}
}
