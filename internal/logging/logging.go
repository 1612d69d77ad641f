// Package logging holds the shared structured logger used by the seedgrid
// packages. It defaults to warnings on stderr; tests and the CLI may redirect
// or mute it.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the package-level diagnostic logger.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetLevel parses a level name ("debug", "info", "warn", ...) and applies it.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

// SetOutput redirects the logger. Passing nil mutes it.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	Log.SetOutput(w)
}
