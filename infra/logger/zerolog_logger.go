package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.RWMutex
	output  io.Writer = os.Stderr
	level             = zerolog.InfoLevel
	console bool
	closer  io.Closer
)

// Setup applies cfg to every logger created afterwards. Logs go to stderr
// unless cfg.File is set, so they never mix with command output.
func Setup(cfg Config) error {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return err
	}
	var w io.Writer = os.Stderr
	var c io.Closer
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		w, c = lj, lj
	}
	mu.Lock()
	prev := closer
	output, level, closer = w, lvl, c
	console = cfg.Format == "console"
	mu.Unlock()
	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close releases the rotated log file opened by Setup, if any, and reverts to
// stderr.
func Close() error {
	mu.Lock()
	c := closer
	output, closer = os.Stderr, nil
	mu.Unlock()
	if c != nil {
		return c.Close()
	}
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger writing to the configured output.
// The APP_ENV environment variable set to "dev" selects the console format.
// All logs include the provided component field.
func NewZerologLogger(component string) Logger {
	mu.RLock()
	w, lvl, cons := output, level, console
	mu.RUnlock()
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		cons = true
	}
	if cons {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, component, lvl)
}

// NewWithWriter returns a JSON logger writing to w at the given level.
func NewWithWriter(w io.Writer, component string, lvl zerolog.Level) *ZerologLogger {
	z := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
