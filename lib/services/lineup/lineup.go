package lineup

import (
	"cmp"
	"slices"
)

// Score is the weighted sum of a member's four stats. No normalisation.
func Score(m Member, w WeightVector) int {
	return m.TownHallLevel*w.TownHall +
		m.Donations*w.Donations +
		m.Trophies*w.Trophies +
		m.WarStars*w.WarStars
}

// Eligible keeps the members whose detail opts into war and copies the
// detail stats onto them. details must be index-aligned with members;
// a member without a matching detail is treated as opted out.
// Donations always come from the roster.
func Eligible(members []Member, details []PlayerDetail) []Member {
	eligible := make([]Member, 0, len(members))
	for i, m := range members {
		if i >= len(details) || details[i].WarPreference != WarPreferenceIn {
			continue
		}
		d := details[i]
		m.TownHallLevel = d.TownHallLevel
		m.Trophies = d.Trophies
		m.WarStars = d.WarStars
		eligible = append(eligible, m)
	}
	return eligible
}

// Rank returns a copy of members sorted by descending score.
// Equal scores keep their input order.
func Rank(members []Member, w WeightVector) []Member {
	ranked := slices.Clone(members)
	slices.SortStableFunc(ranked, func(a, b Member) int {
		return cmp.Compare(Score(b, w), Score(a, w))
	})
	return ranked
}

// Select returns the first n ranked members, or all of them if fewer.
func Select(ranked []Member, n int) []Member {
	if n <= 0 {
		return []Member{}
	}
	return ranked[:min(n, len(ranked))]
}
