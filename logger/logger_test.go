package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidemill/reply/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

type testUser struct{}

func (testUser) GetID() uint      { return 1 }
func (testUser) GetEmail() string { return "test@example.com" }

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestReplyLoggerLevels(t *testing.T) {
	tcs := []struct {
		name     string
		ll       logger.LogLevel
		logged   []string
		silenced []string
	}{
		{"Debug", logger.LogLevelDebug, []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"}, nil},
		{"Info", logger.LogLevelInfo, []string{"[INFO]", "[WARN]", "[ERROR]"}, []string{"[DEBUG]"}},
		{"Warn", logger.LogLevelWarn, []string{"[WARN]", "[ERROR]"}, []string{"[DEBUG]", "[INFO]"}},
		{"Error", logger.LogLevelError, []string{"[ERROR]"}, []string{"[DEBUG]", "[INFO]", "[WARN]"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(
				logger.WithLogger(newTestLogger(b)),
				logger.WithLevel(tc.ll),
			)

			// Act
			l.Debug("msg", nil)
			l.Info("msg", nil)
			l.Warn("msg", nil)
			l.Error("msg", nil)

			// Assert
			out := b.String()
			for _, level := range tc.logged {
				require.Contains(t, out, level)
			}
			for _, level := range tc.silenced {
				require.NotContains(t, out, level)
			}
		})
	}
}

func TestReplyLoggerOutput(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))

	// Act
	l.Info("such fun!", nil)

	// Assert
	line := b.String()
	require.Equal(t, "[INFO]", logLevelRegexp.FindString(line))
	require.Regexp(t, fpRegexp, line)
	require.Equal(t, "'such fun!'", msgRegexp.FindString(line))
	require.NotContains(t, line, "log_context:")
}

func TestReplyLoggerContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))

	// Act
	l.Error("kaboom", &logger.LogContext{Error: errors.New("test")})

	// Assert
	line := b.String()
	require.Contains(t, line, "log_context:")
	require.Contains(t, line, `"error":"test"`)
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"whoops", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}

func TestReplyLoggerAddSkip(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))
	sl, ok := l.(logger.SkipLogger)
	require.True(t, ok)

	// Act
	next := sl.AddSkip(2)

	// Assert
	require.Equal(t, 2, next.Skip())
	require.Equal(t, 0, sl.Skip())
}
