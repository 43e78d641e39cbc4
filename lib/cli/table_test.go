package cli

import (
	"bytes"
	"strings"
	"testing"

	"warlineup/lib/services/lineup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintLineup_Table(t *testing.T) {
	var out bytes.Buffer
	PrintLineup(&out, "Clash Kings", []lineup.Member{
		{Name: "Alpha", TownHallLevel: 15, Donations: 1200, Trophies: 5100, WarStars: 900},
		{TownHallLevel: 9, Donations: 0, Trophies: 1800, WarStars: 40},
	})

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "Best War Lineup for Clash Kings:", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "Name                 TH         Donations  Trophies   War Stars ", lines[3])
	assert.Equal(t, strings.Repeat("-", 60), lines[4])
	assert.Equal(t, "Alpha                15         1200       5100       900       ", lines[5])
	assert.Equal(t, "Unknown              9          0          1800       40        ", lines[6])
}

func TestPrintLineup_Empty(t *testing.T) {
	var out bytes.Buffer
	PrintLineup(&out, "Clash Kings", nil)

	assert.Equal(t, "\nBest War Lineup for Clash Kings:\n\nNo players selected for war.\n", out.String())
}

func TestRow_LongNameNotTruncated(t *testing.T) {
	long := "ThisNameIsLongerThanTwentyColumns"
	assert.True(t, strings.HasPrefix(row(long, "1"), long+" 1"))
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	PrintBanner(&out)
	assert.Equal(t, "=== Clash of Clans War Lineup Optimizer ===\n\n", out.String())
}
