package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"warlineup/lib/services/lineup"

	"github.com/mattn/go-runewidth"
)

const (
	nameWidth = 20
	statWidth = 10
	ruleWidth = 60
)

// PrintBanner writes the program title.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, "=== Clash of Clans War Lineup Optimizer ===")
	fmt.Fprintln(w)
}

// PrintLineup writes the lineup table for clanName. Columns are padded by
// display width so wide runes in player names keep the table aligned.
func PrintLineup(w io.Writer, clanName string, members []lineup.Member) {
	fmt.Fprintf(w, "\nBest War Lineup for %s:\n\n", clanName)

	if len(members) == 0 {
		fmt.Fprintln(w, "No players selected for war.")
		return
	}

	fmt.Fprintln(w, row("Name", "TH", "Donations", "Trophies", "War Stars"))
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, m := range members {
		name := m.Name
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintln(w, row(
			name,
			strconv.Itoa(m.TownHallLevel),
			strconv.Itoa(m.Donations),
			strconv.Itoa(m.Trophies),
			strconv.Itoa(m.WarStars),
		))
	}
}

func row(name string, stats ...string) string {
	cells := make([]string, 0, len(stats)+1)
	cells = append(cells, runewidth.FillRight(name, nameWidth))
	for _, s := range stats {
		cells = append(cells, runewidth.FillRight(s, statWidth))
	}
	return strings.Join(cells, " ")
}
