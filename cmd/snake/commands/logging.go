package commands

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	logFile  = ""
	logLevel = "info"
)

// setupLogging points logrus at the log file, or at fallback when no file is
// set. A nil fallback discards logs, which is what the terminal game needs
// since the screen belongs to the renderer.
func setupLogging(fallback io.Writer) (func(), error) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", logLevel)
	}
	log.SetLevel(level)

	if logFile == "" {
		if fallback == nil {
			fallback = ioutil.Discard
		}
		log.SetOutput(fallback)
		return func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	log.SetOutput(f)
	return func() {
		if err := f.Close(); err != nil {
			log.SetOutput(os.Stderr)
			log.WithError(err).Warn("unable to close log file")
		}
	}, nil
}
