package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Every layer logs through it.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	Log.SetLevel(logrus.InfoLevel)
}

// SetLevel adjusts the log level from its textual form ("debug", "info", ...).
// Unknown values fall back to info.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
