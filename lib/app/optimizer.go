package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"warlineup/lib/cli"
	"warlineup/lib/monitoring"
	"warlineup/lib/services/lineup"
	"warlineup/lib/services/roster"
	"warlineup/lib/utils/logging"
)

// Optimizer runs the interactive pipeline: prompt, fetch roster, prompt
// weights, fetch details, rank, print.
type Optimizer struct {
	fetcher  *roster.Fetcher
	prompter *cli.Prompter
	out      io.Writer
	logger   *logging.StructuredLogger
}

func NewOptimizer(fetcher *roster.Fetcher, prompter *cli.Prompter, out io.Writer, logger *logging.StructuredLogger) *Optimizer {
	if logger == nil {
		logger = logging.NewLogger("LINEUP")
	}
	return &Optimizer{fetcher: fetcher, prompter: prompter, out: out, logger: logger}
}

// Run returns an error for unusable clan tag or war size input and when
// ctx ends before the lineup is printed. Fetch failures and an empty
// eligible set are reported on out and end the run normally.
func (o *Optimizer) Run(ctx context.Context) error {
	start := time.Now()
	defer func() {
		monitoring.LineupRunDuration.Set(time.Since(start).Seconds())
	}()

	cli.PrintBanner(o.out)

	clanTag, err := o.prompter.ClanTag(ctx)
	if err != nil {
		return err
	}
	warSize, err := o.prompter.WarSize(ctx)
	if err != nil {
		return err
	}

	members, clanName := o.fetcher.Clan(ctx, clanTag)
	if err := ctx.Err(); err != nil {
		return err
	}
	monitoring.LineupRosterMembers.Set(float64(len(members)))
	if len(members) == 0 {
		fmt.Fprintln(o.out, "Could not fetch clan members.")
		return nil
	}

	selected, err := o.bestLineup(ctx, members, warSize)
	if err != nil {
		return err
	}

	o.logger.Info("LINEUP_SELECTED", map[string]any{
		logging.CLAN_TAG: clanTag,
		logging.WAR_SIZE: warSize,
		logging.TOTAL:    len(members),
		logging.SELECTED: len(selected),
		logging.DURATION: time.Since(start).String(),
	})

	cli.PrintLineup(o.out, clanName, selected)
	return nil
}

func (o *Optimizer) bestLineup(ctx context.Context, members []lineup.Member, warSize int) ([]lineup.Member, error) {
	weights, err := o.prompter.Weights(ctx)
	if err != nil {
		return nil, err
	}
	details := o.fetcher.Details(ctx, members)
	// Interrupted fetches look like opted-out players; don't rank them.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eligible := lineup.Eligible(members, details)
	monitoring.LineupEligibleMembers.Set(float64(len(eligible)))
	if len(eligible) == 0 {
		fmt.Fprintln(o.out, "No members opted for war.")
		monitoring.LineupSelectedMembers.Set(0)
		return nil, nil
	}

	selected := lineup.Select(lineup.Rank(eligible, weights), warSize)
	monitoring.LineupSelectedMembers.Set(float64(len(selected)))
	for i, m := range selected {
		o.logger.Debug("LINEUP_MEMBER", map[string]any{
			logging.RANK:       i + 1,
			logging.PLAYER_TAG: m.Tag,
			logging.SCORE:      lineup.Score(m, weights),
		})
	}
	return selected, nil
}
