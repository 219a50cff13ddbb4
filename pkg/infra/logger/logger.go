package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logDir = "logs"

// NewLogger builds the JSON logger shared by every server process. Entries go
// to logs/<serverType>.log through an async writer and are echoed to stdout.
func NewLogger(serverType string) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))

	logFile := filepath.Clean(filepath.Join(logDir, fmt.Sprintf("%s.log", serverType)))
	if !strings.HasPrefix(logFile, logDir+string(filepath.Separator)) {
		log.Fatalf("Invalid log file path: must be in logs directory")
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		log.Fatalf("Failed to create logs directory: %v", err)
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		log.Fatalf("Failed to initialize async log writer: %v", err)
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook())

	return logger
}

func levelFromEnv(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
