package infra

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/poscustomers/internal/config"
)

// ConfigureLogger applies level and format to the standard logrus logger
func ConfigureLogger(cfg config.LogCfg) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %s - %w", cfg.Level, err)
	}
	logrus.SetLevel(level)

	switch cfg.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %s, must be one of json, text", cfg.Format)
	}

	logrus.SetOutput(os.Stdout)
	return nil
}
