package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing to stderr so that stdout stays free for
// report output. Unknown levels fall back to info; format is TEXT or JSON.
func NewLogger(level, format string, disableTimestamp bool) *logrus.Logger {
	return newLogger(os.Stderr, level, format, disableTimestamp)
}

func newLogger(out io.Writer, level, format string, disableTimestamp bool) *logrus.Logger {
	var log = logrus.New()
	if strings.EqualFold(format, "JSON") {
		log.Formatter = &logrus.JSONFormatter{DisableTimestamp: disableTimestamp}
	} else {
		log.Formatter = &logrus.TextFormatter{
			DisableTimestamp: disableTimestamp,
			FullTimestamp:    true,
		}
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.Level = lvl
	log.Out = out
	return log
}
