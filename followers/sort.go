// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package followers

import (
	"slices"
	"strings"

	"github.com/danielhkuo/reach-board/models"
)

// Order is the direction of a follower sort.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder reads an order from a query value. Unknown or empty values fall
// back to Desc and report false.
func ParseOrder(s string) (Order, bool) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	default:
		return Desc, false
	}
}

// Sort returns a copy of records ordered by the parsed value of key.
// The input slice is left untouched and ties keep their input order.
func Sort[T any](records []T, order Order, key func(T) string) []T {
	type keyed struct {
		count  float64
		record T
	}

	// parse once per record rather than once per comparison
	rows := make([]keyed, len(records))
	for i, r := range records {
		rows[i] = keyed{count: Parse(key(r)), record: r}
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		if order == Asc {
			return compare(a.count, b.count)
		}
		return compare(b.count, a.count)
	})

	sorted := make([]T, len(rows))
	for i, row := range rows {
		sorted[i] = row.record
	}
	return sorted
}

// SortInfluencers orders influencers by their Followers string.
func SortInfluencers(influencers []models.Influencer, order Order) []models.Influencer {
	return Sort(influencers, order, func(i models.Influencer) string {
		return i.Followers
	})
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
