// Package logging wires logrus to a file so a fullscreen TUI process
// can log without writing over its own screen.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup points the shared logrus logger at the given file, appending
// to it. With an empty path all output is discarded. The returned
// closer releases the file and is safe to defer.
func Setup(path string) (func() error, error) {
	if path == "" {
		logrus.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.Info("session start")
	return f.Close, nil
}
