package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors every formatted entry to a console writer.
type ConsoleHook struct {
	out io.Writer
}

func NewConsoleHook() *ConsoleHook {
	return &ConsoleHook{out: os.Stdout}
}

func NewConsoleHookWithWriter(out io.Writer) *ConsoleHook {
	return &ConsoleHook{out: out}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
