package lineup

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinWeight = 0
	MaxWeight = 10
)

// ParseWeight parses a single weight answer.
func ParseWeight(s string) (int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return w, nil
}

// OutOfRange lists the stats whose weight falls outside [MinWeight, MaxWeight].
func (w WeightVector) OutOfRange() []string {
	var out []string
	check := func(name string, v int) {
		if v < MinWeight || v > MaxWeight {
			out = append(out, name)
		}
	}
	check("town_hall", w.TownHall)
	check("donations", w.Donations)
	check("trophies", w.Trophies)
	check("war_stars", w.WarStars)
	return out
}
