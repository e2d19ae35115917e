package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"keybroker/config"
)

// Logger is a thin key/value facade over logrus. The zero value discards
// everything, which keeps tests that build usecases by hand quiet.
type Logger struct {
	entry *logrus.Entry
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, out io.Writer) (*Logger, error) {
	l := logrus.New()
	l.SetOutput(out)

	level := cfg.LoggerMode.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	l.SetLevel(lvl)

	if cfg.LoggerMode.Development {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// With returns a child logger carrying the given key/value pairs.
func (l Logger) With(keysAndValues ...any) Logger {
	if l.entry == nil {
		return l
	}
	return Logger{entry: l.entry.WithFields(fields(keysAndValues))}
}

func (l Logger) Debug(msg string, keysAndValues ...any) {
	if l.entry != nil {
		l.entry.WithFields(fields(keysAndValues)).Debug(msg)
	}
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	if l.entry != nil {
		l.entry.WithFields(fields(keysAndValues)).Info(msg)
	}
}

func (l Logger) Warn(msg string, keysAndValues ...any) {
	if l.entry != nil {
		l.entry.WithFields(fields(keysAndValues)).Warn(msg)
	}
}

func (l Logger) Error(msg string, keysAndValues ...any) {
	if l.entry != nil {
		l.entry.WithFields(fields(keysAndValues)).Error(msg)
	}
}

func (l Logger) Errorf(format string, args ...any) {
	if l.entry != nil {
		l.entry.Errorf(format, args...)
	}
}

func fields(keysAndValues []any) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		if i+1 < len(keysAndValues) {
			f[key] = keysAndValues[i+1]
		} else {
			f[key] = "(MISSING)"
		}
	}
	return f
}
