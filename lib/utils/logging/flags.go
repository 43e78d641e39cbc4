package logging

import (
	"flag"
	"sync"
)

var (
	once             sync.Once
	verboseFlag      *bool
	verboseLongFlag  *bool
	logLevelFlag     *string
	logLevelLongFlag *string
)

func init() {
	verboseFlag = flag.Bool("v", false, "enable verbose (debug) logging")
	verboseLongFlag = flag.Bool("verbose", false, "enable verbose (debug) logging")
	logLevelFlag = flag.String("log", "", "set log level (debug, info, warn, error)")
	logLevelLongFlag = flag.String("log-level", "", "set log level (debug, info, warn, error)")
}

// ParseFlags parses the command line and applies the logging flags
// (-v, -verbose, -log, -log-level). Call it from main instead of flag.Parse.
// -log/-log-level win over -v, which wins over LOG_LEVEL.
func ParseFlags() {
	once.Do(func() {
		if !flag.Parsed() {
			flag.Parse()
		}

		if *verboseFlag || *verboseLongFlag {
			SetVerbose(true)
		}

		switch {
		case isValidLogLevel(*logLevelFlag):
			SetLogLevel(*logLevelFlag)
		case isValidLogLevel(*logLevelLongFlag):
			SetLogLevel(*logLevelLongFlag)
		}
	})
}
