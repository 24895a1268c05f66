package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetLevel(level)
	logger.SetOutput(log.New(&buf, "", 0))
	return logger, &buf
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug allowed at debug", LevelDebug, LevelDebug, true},
		{"error allowed at debug", LevelDebug, LevelError, true},
		{"debug blocked at info", LevelInfo, LevelDebug, false},
		{"info allowed at info", LevelInfo, LevelInfo, true},
		{"info blocked at warn", LevelWarn, LevelInfo, false},
		{"warn allowed at warn", LevelWarn, LevelWarn, true},
		{"warn blocked at error", LevelError, LevelWarn, false},
		{"error allowed at error", LevelError, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.minLevel)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("step")
			case LevelInfo:
				logger.Info("step")
			case LevelWarn:
				logger.Warn("step")
			case LevelError:
				logger.Error("step")
			}

			if tt.shouldLog {
				assert.True(t, strings.HasPrefix(buf.String(), tt.logLevel.String()+": step"))
			} else {
				assert.Empty(t, buf.String())
			}
			assert.Equal(t, tt.logLevel >= tt.minLevel, logger.Enabled(tt.logLevel))
		})
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.WithFields(map[string]interface{}{
		"updates":   3,
		"component": "gameloop",
	}).Info("step done", "accumulated", 2*time.Millisecond)

	assert.Equal(t, "INFO: step done | accumulated=2ms component=gameloop updates=3\n", buf.String())
}

func TestLoggerChildSharesLevelAndOutput(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)
	child := logger.With("component", "runner")

	child.Info("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	child.Info("visible")
	assert.Contains(t, buf.String(), "INFO: visible | component=runner")
}

func TestLoggerOriginalUnmodified(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	_ = logger.With("tick", 7)
	logger.Info("parent")

	assert.NotContains(t, buf.String(), "tick=7")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"simple string", "render", "render"},
		{"string with spaces", "update failed", `"update failed"`},
		{"empty string", "", `""`},
		{"integer", 42, "42"},
		{"error", errors.New("unknown!"), `"unknown!"`},
		{"duration", 16 * time.Millisecond, "16ms"},
		{"float32", float32(0.6), "0.6"},
		{"float64", 0.25, "0.25"},
		{"level stringer", LevelInfo, "INFO"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"trace", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	SetLevel(LevelInfo)
	defer SetOutput(log.New(&bytes.Buffer{}, "", 0))
	defer SetLevel(LevelWarn)

	Debug("debug message")
	assert.Empty(t, buf.String())

	// Children made before SetOutput follow the new output too.
	child := With("component", "runner")
	child.Info("info message")
	assert.Contains(t, buf.String(), "INFO: info message | component=runner")

	buf.Reset()
	SetLevel(LevelDebug)
	assert.True(t, child.Enabled(LevelDebug))
	Debug("config loaded", "path", "gameloop.yaml")
	assert.Equal(t, "DEBUG: config loaded | path=gameloop.yaml\n", buf.String())
}
