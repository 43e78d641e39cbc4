package logging

// Log levels
const (
	DEBUG = "DEBUG" // Diagnostic information when verbose flag is passed
	INFO  = "INFO"  // Generally useful information (run start/stop, configuration assumptions)
	WARN  = "WARN"  // Recoverable issues (failed fetches degraded to defaults) - no alerts
	ERROR = "ERROR" // Operation-fatal errors requiring user intervention - sent to Sentry
	FATAL = "FATAL" // Run-fatal errors that exit with status 1
)

const (
	Error = "error"
	Fatal = "fatal"
	Warn  = "warn"
	Info  = "info"
	Debug = "debug"
)

// Standard logging field keys - use constants to ensure consistency
const (
	// Core fields
	COUNT  = "count"
	PATH   = "path"
	REASON = "reason"

	// Network/HTTP fields
	ENDPOINT    = "endpoint"
	METHOD      = "method"
	STATUS_CODE = "status_code"
	ERROR_TYPE  = "error_type"
	RATE        = "rate"
	TIMEOUT     = "timeout"

	// Clan/player fields
	CLAN_TAG       = "clan_tag"
	CLAN_NAME      = "clan_name"
	PLAYER_TAG     = "player_tag"
	WAR_PREFERENCE = "war_preference"
	WAR_SIZE       = "war_size"
	WEIGHT         = "weight"
	RANK           = "rank"
	SCORE          = "score"

	// Process fields
	CONCURRENCY = "concurrency"
	RUN_ID      = "run_id"
	SELECTED    = "selected"
	TOTAL       = "total"

	// Timing
	DURATION = "duration"
)
