package shyftparserv2

import (
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger builds a structured logger. The orchestrator owns one instance
// for its terminal outcome lines; SwapperIdentifier owns a separate instance
// for its Debug-level ambiguous-candidate line. Every other stage stays pure
// and silent and never needs a logger of its own.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}
