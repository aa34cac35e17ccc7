package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/auction-monitor/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", input: "trace", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := logger.ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	l := logger.New("info", "text")
	require.NotNil(t, l)
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info", "text")
	l.Info("retrieving auctions")

	output := buf.String()
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "retrieving auctions")
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info", "json")
	l.Info("retrieving auctions")

	output := buf.String()
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"msg":"retrieving auctions"`)
}

func TestNewWithWriter_TintFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info", "tint")
	l.Info("retrieving auctions", "run_id", "abc")

	output := buf.String()
	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "retrieving auctions")
	assert.Contains(t, output, "run_id=abc")
	assert.NotContains(t, output, "\x1b[", "no colour when not writing to a terminal")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      string
		format     string
		logFunc    func(*slog.Logger)
		wantOutput bool
	}{
		{
			name:       "debug message visible at debug level",
			level:      "debug",
			format:     "text",
			logFunc:    func(l *slog.Logger) { l.Debug("test") },
			wantOutput: true,
		},
		{
			name:       "debug message suppressed at info level",
			level:      "info",
			format:     "text",
			logFunc:    func(l *slog.Logger) { l.Debug("test") },
			wantOutput: false,
		},
		{
			name:       "info message suppressed at warn level",
			level:      "warn",
			format:     "json",
			logFunc:    func(l *slog.Logger) { l.Info("test") },
			wantOutput: false,
		},
		{
			name:       "error message visible at error level with tint",
			level:      "error",
			format:     "tint",
			logFunc:    func(l *slog.Logger) { l.Error("test") },
			wantOutput: true,
		},
		{
			name:       "warn message suppressed at error level with tint",
			level:      "error",
			format:     "tint",
			logFunc:    func(l *slog.Logger) { l.Warn("test") },
			wantOutput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := logger.NewWithWriter(&buf, tt.level, tt.format)
			tt.logFunc(l)

			if tt.wantOutput {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
