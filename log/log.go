package log

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.Formatter = NewFormatter("")
	log.Level = level()
}

func level() logrus.Level {
	switch strings.ToLower(os.Getenv("GQLBRIDGE_LOGLEVEL")) {
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// NewFormatter returns a log formatter by name. An empty or unknown
// name yields the default text formatter.
func NewFormatter(name string) logrus.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return &JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	default:
		return &logrus.TextFormatter{
			TimestampFormat: "Jan 02 15:04:05",
			FullTimestamp:   true,
			DisableColors:   true,
		}
	}
}

// ParseLevel maps a level name onto the logrus level, for config-driven
// overrides of the environment default.
func ParseLevel(lvl string) (logrus.Level, error) {
	return logrus.ParseLevel(lvl)
}

func Get() *logrus.Logger {
	return log
}
