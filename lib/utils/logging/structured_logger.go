package logging

import (
	"fmt"
	"maps"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"warlineup/lib/utils/sentry"
)

// StructuredLogger writes logfmt lines tagged with a prefix
type StructuredLogger struct {
	prefix string
	base   map[string]any
}

// NewLogger creates a new logger with the given prefix
func NewLogger(prefix string) *StructuredLogger {
	return &StructuredLogger{prefix: prefix}
}

// With returns a logger that adds fields to every line it writes.
// Per-call fields win over base fields with the same key.
func (l *StructuredLogger) With(fields map[string]any) *StructuredLogger {
	base := make(map[string]any, len(l.base)+len(fields))
	maps.Copy(base, l.base)
	maps.Copy(base, fields)
	return &StructuredLogger{prefix: l.prefix, base: base}
}

func (l *StructuredLogger) merge(fields map[string]any) map[string]any {
	if len(l.base) == 0 {
		if fields == nil {
			return make(map[string]any)
		}
		return fields
	}
	merged := make(map[string]any, len(l.base)+len(fields))
	maps.Copy(merged, l.base)
	maps.Copy(merged, fields)
	return merged
}

// formatLogfmtKey removes leading $
func formatLogfmtKey(k string) string {
	if after, ok := strings.CutPrefix(k, "$"); ok {
		k = after
	}
	return k
}

// formatLogfmtValue renders v as a logfmt value, quoting it when it
// contains whitespace, '=', quotes or backslashes.
func formatLogfmtValue(v any) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(val)
	default:
		s = fmt.Sprint(v)
	}

	if !strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"' || r == '\\'
	}) {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return `"` + s + `"`
}

func (l *StructuredLogger) log(level string, key string, fields map[string]any) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	prefix := fmt.Sprintf("%s [%s][%s] -- ", timestamp, level, l.prefix)

	fields = l.merge(fields)

	// Build structured log entry
	var output = key
	if len(fields) != 0 {
		output = fmt.Sprintf("%s >>", output)
		var logfmtParts []string
		// Sort keys to ensure consistent field ordering
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			logfmtParts = append(logfmtParts, fmt.Sprintf("%s=%s", formatLogfmtKey(k), formatLogfmtValue(fields[k])))
		}
		if len(logfmtParts) > 0 {
			output += " " + strings.Join(logfmtParts, " ")
		}
	}

	switch level {
	case INFO, DEBUG:
		fmt.Fprintf(stdoutWriter, "%s%s\n", prefix, output)
	case WARN, ERROR, FATAL:
		fmt.Fprintf(stderrWriter, "%s%s\n", prefix, output)
	}
}

func withError(fields map[string]any, err error) map[string]any {
	if err != nil {
		fields["error"] = err.Error()
	} else {
		fields["error"] = "<nil>"
	}
	return fields
}

func (l *StructuredLogger) Debug(key string, fields map[string]any) {
	if ShouldLog(Debug) {
		l.log(DEBUG, key, fields)
	}
}

func (l *StructuredLogger) Info(key string, fields map[string]any) {
	if ShouldLog(Info) {
		l.log(INFO, key, fields)
	}
}

func (l *StructuredLogger) Warn(key string, err error, fields map[string]any) {
	if ShouldLog(Warn) {
		fields = withError(l.merge(fields), err)
		l.log(WARN, key, fields)
	}
}

func (l *StructuredLogger) Error(key string, err error, fields map[string]any) {
	fields = withError(l.merge(fields), err)
	if ShouldLog(Error) {
		l.log(ERROR, key, fields)
	}

	if err != nil {
		sentry.CaptureError(Error, key, err, fields)
	}
}

func (l *StructuredLogger) Fatal(key string, err error, fields map[string]any) {
	fields = withError(l.merge(fields), err)
	if ShouldLog(Error) {
		l.log(FATAL, key, fields)
	}
	if err != nil {
		sentry.CaptureError(Fatal, key, err, fields)
	}

	sentry.Flush()
	os.Exit(1)
}

// InitSentry initializes Sentry error tracking using the logger's prefix as the app name.
// Sentry will only be initialized if SENTRY_DSN environment variable is set.
//
// Returns two functions that should be deferred in main():
//   - flushFunc: Flushes pending Sentry events before program exit (defer this first)
//   - recoverFunc: Captures panics and sends them to Sentry (defer this second)
//
// Example usage:
//
//	func main() {
//		logger := logging.NewLogger("my-service")
//		flushSentry, recoverSentry := logger.InitSentry()
//		defer flushSentry()    // Runs second - flushes all events
//		defer recoverSentry()  // Runs first - catches panics
//
//		// Your application code here
//	}
func (l *StructuredLogger) InitSentry() (flushFunc func(), recoverFunc func()) {
	fields := map[string]any{
		"app": l.prefix,
	}
	sentryInitialized := sentry.Init(l.prefix, IsVerbose())
	if !sentryInitialized {
		l.Debug("SENTRY_NOT_INITIALIZED", fields)
	} else {
		l.Debug("SENTRY_INITIALIZED", fields)
	}

	flushFunc = func() {
		if sentryInitialized {
			l.Debug("FLUSHING_SENTRY", fields)
			sentry.Flush()
		}
	}

	recoverFunc = sentry.Recover
	return
}
