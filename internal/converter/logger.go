package converter

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Logger is the logging surface the converter needs.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithField returns a Logger that attaches key=value to every entry.
	WithField(key string, value interface{}) Logger
}

// NewLogger returns a Logger backed by a logrus logger writing to out at the
// given level ("debug", "info", "warn", "error").
func NewLogger(out io.Writer, level string) (Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := log.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return FromLogrus(log.NewEntry(l)), nil
}

// FromLogrus wraps an existing logrus entry.
func FromLogrus(entry *log.Entry) Logger {
	return &logrusLogger{entry: entry}
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return FromLogrus(log.NewEntry(l))
}

type logrusLogger struct {
	entry *log.Entry
}

func (l *logrusLogger) Debug(msg string, args ...interface{}) {
	l.entry.Debugf(msg, args...)
}

func (l *logrusLogger) Info(msg string, args ...interface{}) {
	l.entry.Infof(msg, args...)
}

func (l *logrusLogger) Warn(msg string, args ...interface{}) {
	l.entry.Warnf(msg, args...)
}

func (l *logrusLogger) Error(msg string, args ...interface{}) {
	l.entry.Errorf(msg, args...)
}

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithField(key, value)}
}
