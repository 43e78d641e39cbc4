package coc

import (
	"fmt"

	"warlineup/lib/services/lineup"
)

const UnknownClanName = "Unknown Clan"

// ClientError is the body the API returns with non-200 responses.
type ClientError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *ClientError) Error() string {
	if e.Message == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// Clan is the subset of the clan lookup response used for ranking.
// Optional fields are pointers so absence is distinguishable from zero.
type Clan struct {
	Tag        string       `json:"tag"`
	Name       *string      `json:"name"`
	MemberList []ClanMember `json:"memberList"`
}

// DisplayName returns the clan name, or UnknownClanName when the field is
// absent. A present but empty name is returned as is.
func (c *Clan) DisplayName() string {
	if c.Name == nil {
		return UnknownClanName
	}
	return *c.Name
}

type ClanMember struct {
	Tag       string `json:"tag"`
	Name      string `json:"name"`
	Donations *int   `json:"donations"`
}

// Member converts a roster entry. Missing donations default to 0.
func (m ClanMember) Member() lineup.Member {
	return lineup.Member{
		Tag:       m.Tag,
		Name:      m.Name,
		Donations: intOrZero(m.Donations),
	}
}

// Player is the subset of the player lookup response used for ranking.
type Player struct {
	Tag           string  `json:"tag"`
	TownHallLevel *int    `json:"townHallLevel"`
	Trophies      *int    `json:"trophies"`
	WarStars      *int    `json:"warStars"`
	WarPreference *string `json:"warPreference"`
}

// Detail converts a player profile to ranking input.
//
// Defaults for absent fields:
//
//	townHallLevel  0
//	trophies       0
//	warStars       0
//	warPreference  "out"
//
// Any preference value other than "in" is reported as "out".
func (p *Player) Detail() lineup.PlayerDetail {
	d := lineup.DefaultPlayerDetail()
	if p == nil {
		return d
	}
	d.TownHallLevel = intOrZero(p.TownHallLevel)
	d.Trophies = intOrZero(p.Trophies)
	d.WarStars = intOrZero(p.WarStars)
	if p.WarPreference != nil && lineup.WarPreference(*p.WarPreference) == lineup.WarPreferenceIn {
		d.WarPreference = lineup.WarPreferenceIn
	}
	return d
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
