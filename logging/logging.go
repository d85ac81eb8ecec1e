// Package logging wraps logrus behind a module-tagged accessor so every
// package logs through one configured instance.
package logging

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetLevel(log.InfoLevel)
}

// Init sets the process-wide log level from its textual form
// (debug/info/warning/error).
func Init(level string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	logger.SetLevel(parsed)
	return nil
}

// GetLogIns returns an entry tagged with the calling module's name.
func GetLogIns(module string) *log.Entry {
	return logger.WithField("module", module)
}
