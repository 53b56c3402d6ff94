package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to out. An unknown or empty level falls
// back to warn.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = DefaultLevel
	}
	logger.SetLevel(parsed)

	return logger
}
