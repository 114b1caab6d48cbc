// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package followers

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/reach-board/models"
)

func influencersFrom(counts ...string) []models.Influencer {
	out := make([]models.Influencer, len(counts))
	for i, c := range counts {
		out[i] = models.Influencer{ID: string(rune('a' + i)), Name: "Influencer " + c, Followers: c}
	}
	return out
}

func followerStrings(influencers []models.Influencer) []string {
	out := make([]string, len(influencers))
	for i, inf := range influencers {
		out[i] = inf.Followers
	}
	return out
}

func TestSortInfluencers_MixedFormats(t *testing.T) {
	input := influencersFrom("2.4M", "1,800,000", "3.1M", "987K", "1.5M", "2,100,000", "890K", "1.7M", "1,300,000", "2.8M")
	want := []string{"3.1M", "2.8M", "2.4M", "2,100,000", "1,800,000", "1.7M", "1.5M", "1,300,000", "987K", "890K"}

	t.Run("descending", func(t *testing.T) {
		got := SortInfluencers(input, Desc)
		assert.Equal(t, want, followerStrings(got))
	})

	t.Run("ascending is the exact reverse", func(t *testing.T) {
		reversed := slices.Clone(want)
		slices.Reverse(reversed)

		got := SortInfluencers(input, Asc)
		assert.Equal(t, reversed, followerStrings(got))
	})
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	input := influencersFrom("1K", "3K", "2K")
	before := slices.Clone(input)

	sorted := SortInfluencers(input, Desc)

	assert.Equal(t, before, input)
	assert.Equal(t, []string{"3K", "2K", "1K"}, followerStrings(sorted))

	sorted[0].Name = "changed"
	assert.NotEqual(t, "changed", input[1].Name)
}

func TestSort_StableTies(t *testing.T) {
	input := []models.Influencer{
		{ID: "first", Followers: "1K"},
		{ID: "second", Followers: "1,000"},
		{ID: "third", Followers: "2K"},
		{ID: "fourth", Followers: "1000"},
	}

	desc := SortInfluencers(input, Desc)
	ids := make([]string, len(desc))
	for i, inf := range desc {
		ids[i] = inf.ID
	}
	assert.Equal(t, []string{"third", "first", "second", "fourth"}, ids)

	asc := SortInfluencers(input, Asc)
	ids = ids[:0]
	for _, inf := range asc {
		ids = append(ids, inf.ID)
	}
	assert.Equal(t, []string{"first", "second", "fourth", "third"}, ids)
}

func TestSort_MalformedRowsSortToTheLowEnd(t *testing.T) {
	type row struct {
		name      string
		followers *string
	}
	valid := "1.2M"
	empty := ""
	junk := "abc"

	rows := []row{
		{"junk", &junk},
		{"missing", nil},
		{"valid", &valid},
		{"empty", &empty},
	}
	key := func(r row) string {
		if r.followers == nil {
			return ""
		}
		return *r.followers
	}

	var desc []row
	require.NotPanics(t, func() { desc = Sort(rows, Desc, key) })
	assert.Equal(t, "valid", desc[0].name)
	// zero-valued rows keep their relative order
	assert.Equal(t, "junk", desc[1].name)
	assert.Equal(t, "missing", desc[2].name)
	assert.Equal(t, "empty", desc[3].name)

	asc := Sort(rows, Asc, key)
	assert.Equal(t, "valid", asc[len(asc)-1].name)
	assert.Equal(t, "junk", asc[0].name)
}

func TestSort_Empty(t *testing.T) {
	assert.Empty(t, SortInfluencers(nil, Desc))
	assert.Empty(t, SortInfluencers([]models.Influencer{}, Asc))
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input string
		order Order
		ok    bool
	}{
		{"asc", Asc, true},
		{"ASC", Asc, true},
		{" desc ", Desc, true},
		{"", Desc, false},
		{"sideways", Desc, false},
	}

	for _, tt := range tests {
		order, ok := ParseOrder(tt.input)
		assert.Equal(t, tt.order, order, "input %q", tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}
