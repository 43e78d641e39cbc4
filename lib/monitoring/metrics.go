package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

var LineupRosterMembers = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "lineup_roster_members",
		Help: "Members returned by the clan roster fetch",
	},
)

var LineupEligibleMembers = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "lineup_eligible_members",
		Help: "Members who opted into war",
	},
)

var LineupSelectedMembers = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "lineup_selected_members",
		Help: "Members placed in the suggested lineup",
	},
)

var PlayerDetailFailures = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "lineup_player_detail_failures_total",
		Help: "Player detail fetches that degraded to defaults",
	},
)

var LineupRunDuration = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "lineup_run_duration_seconds",
		Help: "Wall time of the last lineup run",
	},
)
