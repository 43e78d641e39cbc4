package roster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"warlineup/lib/services/lineup"
	"warlineup/lib/utils/logging"
	"warlineup/lib/web/coc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.SetOutput(io.Discard, io.Discard)
}

type fakeAPI struct {
	clan       *coc.CocHttpResult[coc.Clan]
	clanStatus int
	clanErr    error

	players map[string]*coc.Player
	failed  map[string]int
	delay   func(tag string) time.Duration

	calls       atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeAPI) GetClan(ctx context.Context, clanTag string) (*coc.CocHttpResult[coc.Clan], int, error) {
	return f.clan, f.clanStatus, f.clanErr
}

func (f *fakeAPI) GetPlayer(ctx context.Context, playerTag string) (*coc.CocHttpResult[coc.Player], int, error) {
	f.calls.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		m := f.maxInFlight.Load()
		if n <= m || f.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}
	if f.delay != nil {
		time.Sleep(f.delay(playerTag))
	}

	if status, ok := f.failed[playerTag]; ok {
		if status < 0 {
			return nil, -1, errors.New("dial tcp: connection refused")
		}
		return &coc.CocHttpResult[coc.Player]{Error: &coc.ClientError{Reason: "notFound"}}, status, nil
	}
	p, ok := f.players[playerTag]
	if !ok {
		p = &coc.Player{Tag: playerTag}
	}
	return &coc.CocHttpResult[coc.Player]{Success: true, Data: p}, http.StatusOK, nil
}

func ptr[T any](v T) *T { return &v }

func player(th, trophies, stars int, pref string) *coc.Player {
	return &coc.Player{TownHallLevel: ptr(th), Trophies: ptr(trophies), WarStars: ptr(stars), WarPreference: ptr(pref)}
}

func TestClan_Success(t *testing.T) {
	api := &fakeAPI{
		clan: &coc.CocHttpResult[coc.Clan]{Success: true, Data: &coc.Clan{
			Name: ptr("Clash Kings"),
			MemberList: []coc.ClanMember{
				{Tag: "#A", Name: "a", Donations: ptr(40)},
				{Tag: "#B", Name: "b"},
			},
		}},
		clanStatus: http.StatusOK,
	}
	var out bytes.Buffer

	members, name := NewFetcher(api, &out, 1, nil).Clan(context.Background(), "#CLAN")

	assert.Equal(t, "Clash Kings", name)
	assert.Equal(t, []lineup.Member{{Tag: "#A", Name: "a", Donations: 40}, {Tag: "#B", Name: "b"}}, members)
	assert.Empty(t, out.String())
}

func TestClan_NonOKDegrades(t *testing.T) {
	api := &fakeAPI{
		clan:       &coc.CocHttpResult[coc.Clan]{Error: &coc.ClientError{Reason: "accessDenied"}},
		clanStatus: http.StatusForbidden,
	}
	var out bytes.Buffer

	members, name := NewFetcher(api, &out, 1, nil).Clan(context.Background(), "#CLAN")

	assert.Empty(t, members)
	assert.Equal(t, coc.UnknownClanName, name)
	assert.Equal(t, "Error fetching clan data: 403\n", out.String())
}

func TestClan_TransportErrorDegrades(t *testing.T) {
	api := &fakeAPI{clanStatus: -1, clanErr: errors.New("dial tcp: no such host")}
	var out bytes.Buffer

	members, name := NewFetcher(api, &out, 1, nil).Clan(context.Background(), "#CLAN")

	assert.Empty(t, members)
	assert.Equal(t, coc.UnknownClanName, name)
	assert.Equal(t, "Error fetching clan data: dial tcp: no such host\n", out.String())
}

func TestDetails_FailuresBecomeOptedOut(t *testing.T) {
	api := &fakeAPI{
		players: map[string]*coc.Player{
			"#A": player(14, 4000, 500, "in"),
			"#C": player(12, 3000, 300, "out"),
		},
		failed: map[string]int{"#B": http.StatusNotFound, "#D": -1},
	}
	members := []lineup.Member{{Tag: "#A"}, {Tag: "#B"}, {Tag: "#C"}, {Tag: "#D"}, {Tag: "#E"}}
	var out bytes.Buffer

	details := NewFetcher(api, &out, 1, nil).Details(context.Background(), members)

	require.Len(t, details, 5)
	assert.Equal(t, lineup.PlayerDetail{TownHallLevel: 14, Trophies: 4000, WarStars: 500, WarPreference: lineup.WarPreferenceIn}, details[0])
	assert.Equal(t, lineup.DefaultPlayerDetail(), details[1])
	assert.Equal(t, lineup.WarPreferenceOut, details[2].WarPreference)
	assert.Equal(t, lineup.DefaultPlayerDetail(), details[3])
	assert.Equal(t, lineup.DefaultPlayerDetail(), details[4], "missing fields default to opted out")

	assert.Contains(t, out.String(), "Error fetching player data for #B: 404\n")
	assert.Contains(t, out.String(), "Error fetching player data for #D: dial tcp: connection refused\n")

	eligible := lineup.Eligible(members, details)
	require.Len(t, eligible, 1)
	assert.Equal(t, "#A", eligible[0].Tag)
}

func TestDetails_SequentialByDefault(t *testing.T) {
	api := &fakeAPI{delay: func(string) time.Duration { return 2 * time.Millisecond }}
	members := make([]lineup.Member, 6)
	for i := range members {
		members[i].Tag = fmt.Sprintf("#%d", i)
	}

	NewFetcher(api, io.Discard, 0, nil).Details(context.Background(), members)

	assert.Equal(t, int32(1), api.maxInFlight.Load())
}

func TestDetails_ConcurrentKeepsOrder(t *testing.T) {
	api := &fakeAPI{
		players: map[string]*coc.Player{},
		// Earlier tags finish last so completion order is reversed.
		delay: func(tag string) time.Duration {
			var i int
			fmt.Sscanf(tag, "#%d", &i)
			return time.Duration(10-i) * time.Millisecond
		},
	}
	members := make([]lineup.Member, 8)
	for i := range members {
		members[i].Tag = fmt.Sprintf("#%d", i)
		api.players[members[i].Tag] = player(i, 0, 0, "in")
	}
	ranked := func(details []lineup.PlayerDetail) []lineup.Member {
		return lineup.Select(lineup.Rank(lineup.Eligible(members, details), lineup.DefaultWeights()), 8)
	}

	sequential := ranked(NewFetcher(api, io.Discard, 1, nil).Details(context.Background(), members))
	details := NewFetcher(api, io.Discard, 4, nil).Details(context.Background(), members)
	concurrent := ranked(details)

	for i, d := range details {
		assert.Equal(t, i, d.TownHallLevel)
	}
	assert.Equal(t, sequential, concurrent)
	assert.LessOrEqual(t, api.maxInFlight.Load(), int32(4))
}

func TestDetails_CanceledSkipsRemaining(t *testing.T) {
	api := &fakeAPI{players: map[string]*coc.Player{"#A": player(14, 4000, 500, "in")}}
	members := []lineup.Member{{Tag: "#A"}, {Tag: "#B"}, {Tag: "#C"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer

	details := NewFetcher(api, &out, 1, nil).Details(ctx, members)

	require.Len(t, details, 3)
	for _, d := range details {
		assert.Equal(t, lineup.DefaultPlayerDetail(), d)
	}
	assert.Zero(t, api.calls.Load())
	assert.Empty(t, out.String())
}
