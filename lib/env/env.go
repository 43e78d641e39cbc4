package env

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultCocURLBase  = "https://cocproxy.royaleapi.dev/v1"
	DefaultHTTPTimeout = 10 * time.Second
)

var (
	// Clash of Clans API
	CocAPIKey            string
	CocURLBase           string
	CocHTTPTimeout       time.Duration
	CocRequestsPerSecond float64
	CocConcurrency       int

	// Logging
	LogLevel   string
	StdoutPath string
	StderrPath string

	// Sentry (optional)
	SentryDSN   string
	Environment string
	Release     string

	// Metrics textfile for node_exporter (optional)
	MetricsTextfile string
)

var envIssues []string

func init() {
	// Load .env file (ignore error - variables may be set via environment)
	godotenv.Load()
	load()
}

func load() {
	envIssues = nil

	// API
	CocAPIKey = requireEnv("COC_API_KEY")
	CocURLBase = strings.TrimRight(getEnvWithDefault("COC_API_BASE", DefaultCocURLBase), "/")
	CocHTTPTimeout = getDurationEnv("COC_HTTP_TIMEOUT", DefaultHTTPTimeout)
	CocRequestsPerSecond = getFloatEnv("COC_REQUESTS_PER_SECOND", 0)
	CocConcurrency = getIntEnv("COC_CONCURRENCY", 1)
	if CocConcurrency < 1 {
		envIssues = append(envIssues, "COC_CONCURRENCY (must be >= 1)")
		CocConcurrency = 1
	}

	// Logging
	LogLevel = getEnv("LOG_LEVEL")
	StdoutPath = getEnv("STDOUT")
	StderrPath = getEnv("STDERR")

	// Sentry
	SentryDSN = getEnv("SENTRY_DSN")
	Environment = getEnvWithDefault("ENVIRONMENT", "development")
	Release = getEnv("RELEASE")

	MetricsTextfile = getEnv("METRICS_TEXTFILE")
}

// Validate reports every required variable that is missing or malformed.
// It is called from main rather than init so packages that only need the
// optional settings (logging, tests) can import env without a key.
func Validate() error {
	if len(envIssues) > 0 {
		return errors.New("environment variables are not set or invalid: " + strings.Join(envIssues, ", "))
	}
	return nil
}

func getEnv(key string) string {
	return os.Getenv(key)
}

func requireEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		envIssues = append(envIssues, key)
	}
	return val
}

func getEnvWithDefault(key string, defaultValue string) string {
	if val := getEnv(key); val != "" {
		return val
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	val := getEnv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		envIssues = append(envIssues, key+" (invalid duration)")
		return defaultValue
	}
	return d
}

func getFloatEnv(key string, defaultValue float64) float64 {
	val := getEnv(key)
	if val == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f < 0 {
		envIssues = append(envIssues, key+" (invalid number)")
		return defaultValue
	}
	return f
}

func getIntEnv(key string, defaultValue int) int {
	val := getEnv(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		envIssues = append(envIssues, key+" (invalid integer)")
		return defaultValue
	}
	return i
}
