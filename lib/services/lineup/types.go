package lineup

// WarPreference is a player's opt-in flag for clan wars.
type WarPreference string

const (
	WarPreferenceIn  WarPreference = "in"
	WarPreferenceOut WarPreference = "out"
)

// Member is a clan roster entry. The stat fields after Donations are zero
// until the member is found eligible and enriched from its PlayerDetail.
type Member struct {
	Tag       string
	Name      string
	Donations int

	TownHallLevel int
	Trophies      int
	WarStars      int
}

// PlayerDetail is the subset of a player profile used for ranking.
type PlayerDetail struct {
	TownHallLevel int
	Trophies      int
	WarStars      int
	WarPreference WarPreference
}

// DefaultPlayerDetail is used when a detail fetch fails or returns nothing.
// Its preference is "out", so such members are never eligible.
func DefaultPlayerDetail() PlayerDetail {
	return PlayerDetail{WarPreference: WarPreferenceOut}
}

// WeightVector holds the per-stat importance, nominally in [0,10].
// Values outside the range are accepted as-is.
type WeightVector struct {
	TownHall  int
	Donations int
	Trophies  int
	WarStars  int
}

// DefaultWeights is the uniform fallback used when weight input is invalid.
func DefaultWeights() WeightVector {
	return WeightVector{TownHall: 1, Donations: 1, Trophies: 1, WarStars: 1}
}
