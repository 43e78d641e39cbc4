package logging

import (
	"strings"

	"warlineup/lib/env"
)

var (
	verbose  bool
	logLevel string
)

// logLevelPriority maps log levels to their numeric priority (higher = more important)
var logLevelPriority = map[string]int{
	Debug: 0,
	Info:  1,
	Warn:  2,
	Error: 3,
	// fatal is not a configurable level - it's always shown when error level is enabled
}

func init() {
	logLevel = Info

	if envLevel := env.LogLevel; isValidLogLevel(envLevel) {
		logLevel = strings.ToLower(envLevel)
	}
}

// isValidLogLevel checks if the provided log level is valid
func isValidLogLevel(level string) bool {
	if level == "" {
		return false
	}
	_, ok := logLevelPriority[strings.ToLower(level)]
	return ok
}

// IsVerbose returns true if verbose logging is enabled via either flag or log level is debug
func IsVerbose() bool {
	return verbose || logLevel == Debug
}

// SetLogLevel programmatically sets the log level
func SetLogLevel(level string) {
	if isValidLogLevel(level) {
		logLevel = strings.ToLower(level)
		verbose = (logLevel == Debug)
	}
}

// SetVerbose programmatically enables/disables verbose logging
func SetVerbose(enabled bool) {
	verbose = enabled
	if enabled {
		logLevel = Debug
	}
}

// ShouldLog checks if a given log level should be logged based on current log level
func ShouldLog(level string) bool {
	currentPriority := logLevelPriority[logLevel]
	logPriority := logLevelPriority[level]
	return logPriority >= currentPriority
}
