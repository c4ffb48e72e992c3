// Package logging configures the application-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds the process logger. Debug mode switches to the development
// config (console encoding, debug level); otherwise production JSON logging
// is used. The app name and version are attached to every entry.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
