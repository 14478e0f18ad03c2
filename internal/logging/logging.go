package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger: JSON output to stdout with the
// level taken from configuration. Unknown levels fall back to info.
func Setup(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.JSONFormatter{})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
