package helpers

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger
func NewLogger(appName, env string) *logrus.Logger {
	return newLogger(os.Stdout, appName, env)
}

func newLogger(out io.Writer, appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}

// NewDiscardLogger returns a logger that writes nowhere. Used by tests and
// tools that do not care about output.
func NewDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// LogError Convenience methods to keep a unified logging interface
func LogError(logger logrus.FieldLogger, msg string, err error, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	logger.WithFields(fields).Error(msg)
}

// LogWarn is used for best-effort failures that do not fail the request.
func LogWarn(logger logrus.FieldLogger, msg string, err error, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	logger.WithFields(fields).Warn(msg)
}

func LogInfo(logger logrus.FieldLogger, msg string, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	logger.WithFields(fields).Info(msg)
}
