package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// LogLevel is one of the enabled log channels
type LogLevel int

const (
	LogLevelQuery LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the configuration name of the level
func (l LogLevel) String() string {
	switch l {
	case LogLevelQuery:
		return "query"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger writes structured entries through zerolog. Only the levels listed
// at construction are emitted.
type Logger struct {
	levels map[LogLevel]bool
	zl     zerolog.Logger
}

// Option customizes a Logger
type Option func(*options)

type options struct {
	pretty bool
}

// WithPretty renders entries with zerolog's console writer instead of JSON
func WithPretty(pretty bool) Option {
	return func(o *options) {
		o.pretty = pretty
	}
}

var defaultLogger *Logger

func init() {
	defaultLogger = NewLogger(nil, os.Stdout)
}

// NewLogger creates a logger for the given level names
func NewLogger(levels []string, writer io.Writer, opts ...Option) *Logger {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if writer == nil {
		writer = os.Stdout
	}
	if o.pretty {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.DateTime}
	}

	logger := &Logger{
		levels: make(map[LogLevel]bool),
		zl:     zerolog.New(writer).With().Timestamp().Logger(),
	}

	for _, level := range levels {
		level = strings.ToLower(strings.TrimSpace(level))
		switch level {
		case "query":
			logger.levels[LogLevelQuery] = true
		case "info":
			logger.levels[LogLevelInfo] = true
		case "warn", "warning":
			logger.levels[LogLevelWarn] = true
		case "error":
			logger.levels[LogLevelError] = true
		}
	}

	return logger
}

// SetDefaultLogger replaces the package-level logger
func SetDefaultLogger(logger *Logger) {
	defaultLogger = logger
}

// GetDefaultLogger returns the package-level logger
func GetDefaultLogger() *Logger {
	return defaultLogger
}

// With returns a child logger carrying an extra string field
func (l *Logger) With(key, value string) *Logger {
	return &Logger{
		levels: l.levels,
		zl:     l.zl.With().Str(key, value).Logger(),
	}
}

// Enabled reports whether the level is switched on
func (l *Logger) Enabled(level LogLevel) bool {
	return l.levels[level]
}

// Zerolog exposes the underlying logger for adapters such as pgx-zerolog
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// TraceLevel maps the enabled levels to the pgx tracelog level
func (l *Logger) TraceLevel() tracelog.LogLevel {
	switch {
	case l.levels[LogLevelQuery]:
		return tracelog.LogLevelDebug
	case l.levels[LogLevelInfo]:
		return tracelog.LogLevelInfo
	case l.levels[LogLevelWarn]:
		return tracelog.LogLevelWarn
	case l.levels[LogLevelError]:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}

// Query logs a SQL statement with its arguments inlined
func (l *Logger) Query(query string, args []any, duration time.Duration) {
	if !l.levels[LogLevelQuery] {
		return
	}
	l.zl.Debug().
		Str("kind", LogLevelQuery.String()).
		Dur("took", duration).
		Msg(formatQuery(query, args))
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	if !l.levels[LogLevelInfo] {
		return
	}
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a warning
func (l *Logger) Warn(format string, args ...any) {
	if !l.levels[LogLevelWarn] {
		return
	}
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs an error
func (l *Logger) Error(format string, args ...any) {
	if !l.levels[LogLevelError] {
		return
	}
	l.zl.Error().Msg(fmt.Sprintf(format, args...))
}

// Err logs err at error level with a message
func (l *Logger) Err(err error, msg string) {
	if !l.levels[LogLevelError] {
		return
	}
	l.zl.Error().Err(err).Msg(msg)
}

// formatQuery replaces placeholders with the formatted arguments
func formatQuery(query string, args []any) string {
	if len(args) == 0 {
		return query
	}

	formatted := query
	argIndex := 0

	// PostgreSQL ($1, $2, ...), replaced from the highest index so $1 does
	// not eat the prefix of $10
	if strings.Contains(query, "$1") {
		for i := len(args); i >= 1; i-- {
			placeholder := fmt.Sprintf("$%d", i)
			formatted = strings.ReplaceAll(formatted, placeholder, formatArg(args[i-1]))
		}
		return formatted
	}

	// MySQL/SQLite (?)
	for argIndex < len(args) {
		if !strings.Contains(formatted, "?") {
			break
		}
		formatted = strings.Replace(formatted, "?", formatArg(args[argIndex]), 1)
		argIndex++
	}

	return formatted
}

// formatArg renders an argument for display, redacting sensitive values
func formatArg(arg any) string {
	switch v := arg.(type) {
	case string:
		if isSensitiveData(v) {
			return "'***REDACTED***'"
		}
		if len(v) > 100 {
			return fmt.Sprintf("'%s...' (truncated)", v[:100])
		}
		return fmt.Sprintf("'%s'", v)
	case []byte:
		if len(v) > 0 {
			return "'***REDACTED***'"
		}
		return "''"
	case nil:
		return "NULL"
	default:
		str := fmt.Sprintf("%v", v)
		if isSensitiveData(str) {
			return "***REDACTED***"
		}
		return str
	}
}

// isSensitiveData reports whether a string looks like a secret
func isSensitiveData(s string) bool {
	s = strings.ToLower(s)
	sensitiveKeywords := []string{
		"password", "passwd", "pwd",
		"secret", "token", "api_key",
		"apikey", "access_token", "refresh_token",
		"authorization", "credential", "private_key",
		"ssn", "social_security", "credit_card",
	}

	for _, keyword := range sensitiveKeywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}

	// JWT, Stripe, GitHub and Slack token prefixes
	if len(s) > 20 && (strings.HasPrefix(s, "eyj") ||
		strings.HasPrefix(s, "sk_") ||
		strings.HasPrefix(s, "pk_") ||
		strings.HasPrefix(s, "ghp_") ||
		strings.HasPrefix(s, "xoxb-") ||
		strings.HasPrefix(s, "xoxp-")) {
		return true
	}

	return false
}

func Query(query string, args []any, duration time.Duration) {
	defaultLogger.Query(query, args, duration)
}

func Info(format string, args ...any) {
	defaultLogger.Info(format, args...)
}

func Warn(format string, args ...any) {
	defaultLogger.Warn(format, args...)
}

func Error(format string, args ...any) {
	defaultLogger.Error(format, args...)
}

// SetLogLevels reconfigures the default logger's levels on stdout
func SetLogLevels(levels []string) {
	defaultLogger = NewLogger(levels, os.Stdout)
}
