package roster

import (
	"context"
	"fmt"
	"io"
	"sync"

	"warlineup/lib/monitoring"
	"warlineup/lib/services/lineup"
	"warlineup/lib/utils/logging"
	"warlineup/lib/utils/network"
	"warlineup/lib/web/coc"

	"golang.org/x/sync/errgroup"
)

// Roster service logging constants
const (
	CLAN_FETCH_FAILED         = "CLAN_FETCH_FAILED"
	PLAYER_DETAIL_UNAVAILABLE = "PLAYER_DETAIL_UNAVAILABLE"
)

// API is the part of the Clash of Clans client the fetcher needs.
type API interface {
	GetClan(ctx context.Context, clanTag string) (*coc.CocHttpResult[coc.Clan], int, error)
	GetPlayer(ctx context.Context, playerTag string) (*coc.CocHttpResult[coc.Player], int, error)
}

// Fetcher retrieves a clan roster and the per-member details used for
// ranking. Every failure degrades to empty or default data: a diagnostic
// line goes to Out and a structured log line to the logger. Nothing is
// retried.
type Fetcher struct {
	api         API
	out         io.Writer
	concurrency int
	logger      *logging.StructuredLogger

	outMu sync.Mutex
}

// NewFetcher returns a Fetcher. concurrency below 1 is treated as 1,
// which fetches details strictly one after another.
func NewFetcher(api API, out io.Writer, concurrency int, logger *logging.StructuredLogger) *Fetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = logging.NewLogger("ROSTER_SERVICE")
	}
	return &Fetcher{api: api, out: out, concurrency: concurrency, logger: logger}
}

// Clan returns the roster and display name for clanTag. On any failure it
// returns no members and coc.UnknownClanName.
func (f *Fetcher) Clan(ctx context.Context, clanTag string) ([]lineup.Member, string) {
	res, status, err := f.api.GetClan(ctx, clanTag)
	if err != nil {
		f.logFailure(CLAN_FETCH_FAILED, err, map[string]any{
			logging.CLAN_TAG:    clanTag,
			logging.STATUS_CODE: status,
		})
		f.printf("Error fetching clan data: %s\n", describe(status, err))
		return nil, coc.UnknownClanName
	}
	if !res.Success {
		f.logger.Warn(CLAN_FETCH_FAILED, res.FormatError(clanTag), map[string]any{
			logging.CLAN_TAG:    clanTag,
			logging.STATUS_CODE: status,
		})
		f.printf("Error fetching clan data: %d\n", status)
		return nil, coc.UnknownClanName
	}

	members := make([]lineup.Member, 0, len(res.Data.MemberList))
	for _, m := range res.Data.MemberList {
		members = append(members, m.Member())
	}
	name := res.Data.DisplayName()

	f.logger.Info("CLAN_FETCHED", map[string]any{
		logging.CLAN_TAG:  clanTag,
		logging.CLAN_NAME: name,
		logging.COUNT:     len(members),
	})
	return members, name
}

// Details fetches one PlayerDetail per member. The result is index-aligned
// with members regardless of the order fetches complete in. A failed fetch
// yields lineup.DefaultPlayerDetail, which counts as opted out. Once ctx
// is done the remaining members are skipped; callers must check ctx.Err()
// before using the result.
func (f *Fetcher) Details(ctx context.Context, members []lineup.Member) []lineup.PlayerDetail {
	details := make([]lineup.PlayerDetail, len(members))

	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for i, m := range members {
		g.Go(func() error {
			if ctx.Err() != nil {
				details[i] = lineup.DefaultPlayerDetail()
				return nil
			}
			details[i] = f.detail(ctx, m.Tag)
			return nil
		})
	}
	_ = g.Wait()

	return details
}

func (f *Fetcher) detail(ctx context.Context, playerTag string) lineup.PlayerDetail {
	res, status, err := f.api.GetPlayer(ctx, playerTag)
	if err != nil {
		monitoring.PlayerDetailFailures.Inc()
		f.logFailure(PLAYER_DETAIL_UNAVAILABLE, err, map[string]any{
			logging.PLAYER_TAG:  playerTag,
			logging.STATUS_CODE: status,
		})
		f.printf("Error fetching player data for %s: %s\n", playerTag, describe(status, err))
		return lineup.DefaultPlayerDetail()
	}
	if !res.Success {
		monitoring.PlayerDetailFailures.Inc()
		f.logger.Warn(PLAYER_DETAIL_UNAVAILABLE, res.FormatError(playerTag), map[string]any{
			logging.PLAYER_TAG:  playerTag,
			logging.STATUS_CODE: status,
		})
		f.printf("Error fetching player data for %s: %d\n", playerTag, status)
		return lineup.DefaultPlayerDetail()
	}

	d := res.Data.Detail()
	f.logger.Debug("PLAYER_FETCHED", map[string]any{
		logging.PLAYER_TAG:     playerTag,
		logging.WAR_PREFERENCE: string(d.WarPreference),
	})
	return d
}

// logFailure logs transport failures as warnings when they are environmental
// (timeouts, refused connections) and as errors otherwise.
func (f *Fetcher) logFailure(key string, err error, fields map[string]any) {
	netErr := network.CategorizeNetworkError(err)
	fields[logging.ERROR_TYPE] = string(netErr.Type)
	if network.ShouldLogAsError(err) {
		f.logger.Error(key, err, fields)
		return
	}
	f.logger.Warn(key, err, fields)
}

func (f *Fetcher) printf(format string, args ...any) {
	f.outMu.Lock()
	defer f.outMu.Unlock()
	fmt.Fprintf(f.out, format, args...)
}

func describe(status int, err error) string {
	if status > 0 {
		return fmt.Sprintf("%d (%v)", status, err)
	}
	return err.Error()
}
