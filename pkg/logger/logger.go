// Package logger provides a leveled console logger for Lambda functions.
//
// Verbosity is fixed at construction from a Config holding the deployment stage,
// the log level (error, info or debug) and the stack name. Every line is
// prefixed with the upper-cased stack name followed by the JSON-encoded
// arguments of the call:
//
//	ORDERS: ["created",{"id":42}]
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"lambda-kit/internal/config"
	"lambda-kit/internal/jsonutil"
)

// Level is a numeric severity threshold. Higher levels enable more output.
type Level int

const (
	LevelError Level = 1
	LevelInfo  Level = 2
	LevelDebug Level = 3
)

// levelNames lists the accepted log levels in severity order.
var levelNames = []string{"error", "info", "debug"}

var levelsByName = map[string]Level{
	"error": LevelError,
	"info":  LevelInfo,
	"debug": LevelDebug,
}

func (l Level) String() string {
	if l >= LevelError && l <= LevelDebug {
		return levelNames[l-1]
	}
	return fmt.Sprintf("level(%d)", int(l))
}

const (
	// ValuesKey holds the raw values of DebugNoStringify entries.
	ValuesKey = "values"
	// AuditKey marks audit entries.
	AuditKey = "audit"
)

// Config holds the settings a Logger is built from.
type Config struct {
	Stage     string `validate:"required"`
	LogLevel  string `validate:"required,oneof=error info debug"`
	StackName string `validate:"required"`
}

var validate = validator.New()

// Logger writes leveled, stack-prefixed lines. It is immutable once built.
type Logger struct {
	backend      *logrus.Logger
	level        Level
	stackPrefix  string
	isProduction bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithBackend routes output through the given logrus logger. The backend's
// level is set to Trace; the Logger does its own gating.
func WithBackend(backend *logrus.Logger) Option {
	return func(l *Logger) {
		l.backend = backend
	}
}

// New validates cfg and builds a Logger.
func New(cfg Config, opts ...Option) (*Logger, error) {
	normalized := cfg
	normalized.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validate.Struct(normalized); err != nil {
		return nil, translateValidation(err, cfg)
	}

	l := &Logger{
		level:        levelsByName[normalized.LogLevel],
		stackPrefix:  strings.ToUpper(cfg.StackName),
		isProduction: strings.HasPrefix(strings.ToLower(cfg.Stage), "prod"),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.backend == nil {
		l.backend = newConsoleBackend()
	}
	l.backend.SetLevel(logrus.TraceLevel)

	return l, nil
}

// NewFromEnv builds a Logger from the stage, logLevel and stackName settings
// found in the environment.
func NewFromEnv(opts ...Option) (*Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return New(ConfigFrom(cfg), opts...)
}

// ConfigFrom extracts the logger settings from the application configuration.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Stage:     cfg.Stage,
		LogLevel:  cfg.LogLevel,
		StackName: cfg.StackName,
	}
}

func newConsoleBackend() *logrus.Logger {
	backend := logrus.New()
	backend.Out = os.Stdout
	backend.Formatter = &ConsoleFormatter{}
	return backend
}

// Level returns the configured severity threshold.
func (l *Logger) Level() Level {
	return l.level
}

// IsProduction reports whether the stage starts with "prod".
func (l *Logger) IsProduction() bool {
	return l.isProduction
}

// StackName returns the upper-cased stack name used as the line prefix.
func (l *Logger) StackName() string {
	return l.stackPrefix
}

// Debug logs values when the level is debug.
func (l *Logger) Debug(values ...any) {
	if l.level < LevelDebug {
		return
	}
	l.backend.Debug(l.format(values))
}

// DebugNoStringify logs label followed by the raw values, skipping the JSON
// encoding and the stack prefix. Only emitted when the level is debug.
func (l *Logger) DebugNoStringify(label string, values ...any) {
	if l.level < LevelDebug {
		return
	}
	l.backend.WithField(ValuesKey, nonNil(values)).Debug(label)
}

// Info logs values when the level is info or debug.
func (l *Logger) Info(values ...any) {
	if l.level < LevelInfo {
		return
	}
	l.backend.Info(l.format(values))
}

// Error logs values at every level. A single error value is logged as is,
// with its detailed form, instead of being JSON-encoded.
func (l *Logger) Error(values ...any) {
	if l.level < LevelError {
		return
	}
	if len(values) == 1 {
		if err, ok := values[0].(error); ok {
			l.backend.WithError(err).Error(fmt.Sprintf("%+v", err))
			return
		}
	}
	l.backend.Error(l.format(values))
}

// Audit always logs values, whatever the level or stage.
func (l *Logger) Audit(values ...any) {
	l.backend.WithField(AuditKey, true).Info(l.format(values))
}

// Log logs values unless running in a production stage.
func (l *Logger) Log(values ...any) {
	if l.isProduction {
		return
	}
	l.backend.Info(l.format(values))
}

func (l *Logger) format(values []any) string {
	encoded, err := jsonutil.Marshal(nonNil(values))
	if err != nil {
		return fmt.Sprintf("%s: %v", l.stackPrefix, values)
	}
	return l.stackPrefix + ": " + string(encoded)
}

func nonNil(values []any) []any {
	if values == nil {
		return []any{}
	}
	return values
}
