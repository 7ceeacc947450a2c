package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bookstore/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"debug", logger.LogLevelUnk},
		{"", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestAppLoggerLevels(t *testing.T) {
	color.NoColor = true

	for _, tc := range []struct {
		name  string
		level logger.LogLevel
		fn    func(logger.Logger)
		want  string
	}{
		{"Debug-At-Debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("hi", nil) }, "[DEBUG]"},
		{"Debug-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Debug("hi", nil) }, ""},
		{"Info-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Info("hi", nil) }, "[INFO]"},
		{"Warn-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Warn("hi", nil) }, ""},
		{"Error-At-Warn", logger.LogLevelWarn, func(l logger.Logger) { l.Error("hi", nil) }, "[ERROR]"},
		{"Fatal-At-Fatal", logger.LogLevelFatal, func(l logger.Logger) { l.Fatal("hi", nil) }, "[FATAL]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			// Act
			tc.fn(l)

			// Assert
			if tc.want == "" {
				require.Zero(t, b.Len())
				return
			}

			require.Equal(t, tc.want, logLevelRegexp.FindString(b.String()))
			require.Regexp(t, fpRegexp, b.String())
			require.Equal(t, "hi", msgRegexp.FindStringSubmatch(b.String())[1])
		})
	}
}

func TestAppLoggerContext(t *testing.T) {
	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithKind("http"))

	// Act
	l.Error("could not fetch", &logger.LogContext{
		Caller: "app/handler.go:12",
		Error:  errors.New("boom"),
		Route:  "books",
	})

	// Assert
	require.Equal(
		t,
		`[ERROR] [http] app/handler.go:12 'could not fetch' log_context: "{\"error\":\"boom\",\"route\":\"books\"}"`+"\n",
		b.String(),
	)
}

func TestAppLoggerAddSkip(t *testing.T) {
	l := logger.New()
	require.Zero(t, l.Skip())

	skipped := l.AddSkip(3)
	require.Equal(t, 3, skipped.Skip())
	require.Zero(t, l.Skip())
}

func TestWithLevelIgnoresUnknown(t *testing.T) {
	l := logger.New(logger.WithLevel(logger.LogLevelUnk))
	require.Equal(t, logger.LogLevelInfo, l.LogLevel())
}
