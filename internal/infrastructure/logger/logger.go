package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Configure sets up the process-wide logrus logger.
//
// format is "json" or "text" (default); an unknown level falls back to info.
func Configure(level, format string) {
	logrus.SetOutput(os.Stdout)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
