package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/termsweeper/internal/config"
)

// New builds the process logger. The terminal belongs to the game screen,
// so nothing is written to stderr; entries go to cfg.LogFile instead, and
// are dropped when it is empty.
func New(cfg config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	level := logrus.InfoLevel
	if cfg.Development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)

	return log, nil
}
