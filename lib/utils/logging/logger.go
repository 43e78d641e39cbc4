package logging

// Logger defines the interface for logging
type Logger interface {
	Debug(key string, fields map[string]any) // Only when verbose flag is passed
	Info(key string, fields map[string]any)
	Warn(key string, err error, fields map[string]any)  // monitored, but not alerted
	Error(key string, err error, fields map[string]any) // sent to Sentry
	Fatal(key string, err error, fields map[string]any) // Exits with code 1
}

var _ Logger = (*StructuredLogger)(nil)
