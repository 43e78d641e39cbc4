package monitoring

import (
	"sync"

	"warlineup/lib/monitoring/global_metrics"
	"warlineup/lib/utils/logging"

	"github.com/prometheus/client_golang/prometheus"
)

var logger = logging.NewLogger("MONITORING")

var (
	// Registry holds every metric this binary exports. It is separate from
	// the default registry so the textfile contains no Go runtime series.
	Registry     = prometheus.NewRegistry()
	registerOnce sync.Once
)

// RegisterLineupMetrics registers the API client and lineup metrics.
// Safe to call more than once.
func RegisterLineupMetrics() {
	registerOnce.Do(func() {
		global_metrics.RegisterGlobalMetrics(Registry)
		Registry.MustRegister(
			LineupRosterMembers,
			LineupEligibleMembers,
			LineupSelectedMembers,
			PlayerDetailFailures,
			LineupRunDuration,
		)
	})
}

// WriteTextfile writes the registry in the Prometheus text format for the
// node_exporter textfile collector. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return err
	}
	logger.Debug("METRICS_WRITTEN", map[string]any{
		logging.PATH: path,
	})
	return nil
}
