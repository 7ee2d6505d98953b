package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger. Init replaces it; the default
// keeps package-level logging safe before Init runs (e.g. in tests).
var Log = logrus.New()

// Init configures JSON logging to stdout at the given level.
func Init(level string) {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)
}

// WithFields creates a log entry with the given fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}

// WithField creates a log entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}
