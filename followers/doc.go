// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package followers converts human-readable follower counts into numbers and
orders influencer lists by them.

# Parsing

Parse accepts plain numbers with optional thousands separators and a single
decimal point, or a number followed by one K, M, B or T suffix:

	followers.Parse("2.4M")      // 2400000
	followers.Parse("1,800,000") // 1800000
	followers.Parse("890k")      // 890000

Anything else yields 0. Parse never fails, so a malformed row still sorts
predictably: last under Desc, first under Asc.

ParseValue is the entry point for loosely typed values (decoded JSON,
nullable columns). Only strings are parsed; every other type yields 0.

# Sorting

Sort returns a new slice ordered by parsed follower count. Equal counts keep
their input order:

	sorted := followers.Sort(rows, followers.Desc, func(r Row) string { return r.Followers })

# Display

FormatCompact and FormatFull render counts for API responses:

	followers.FormatCompact(2400000) // "2.4M"
	followers.FormatFull(2400000)    // "2,400,000"
*/
package followers
