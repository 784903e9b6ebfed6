package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the JSON logger for one server type. Entries go to
// <dir>/<serverType>.log through an AsyncFileWriter and are mirrored to stdout.
// The returned closer flushes the file.
func NewLogger(serverType string, cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	asyncWriter, err := NewAsyncFileWriter(filepath.Join(dir, serverType+".log"), 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize async log writer: %w", err)
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger, asyncWriter.Close, nil
}
