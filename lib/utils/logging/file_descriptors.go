package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"warlineup/lib/env"
)

var (
	stdoutWriter io.Writer = os.Stdout
	stderrWriter io.Writer = os.Stderr
)

func init() {
	if env.StdoutPath != "" {
		stdoutWriter = teeToFile(os.Stdout, env.StdoutPath)
	}
	if env.StderrPath != "" {
		stderrWriter = teeToFile(os.Stderr, env.StderrPath)
	}
}

// teeToFile writes to both base and the file at path, creating parent
// directories as needed. Log files that cannot be opened are fatal at startup.
func teeToFile(base io.Writer, path string) io.Writer {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		panic(fmt.Errorf("failed to create log directory: %v", err))
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %v", err))
	}
	return io.MultiWriter(base, file)
}

// SetOutput redirects log output. Intended for tests.
func SetOutput(stdout, stderr io.Writer) {
	stdoutWriter = stdout
	stderrWriter = stderr
}
