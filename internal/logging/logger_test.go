package logging

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Logger_InitLogger_LogLevelConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
	}{
		{name: "debug_level", logLevel: "debug", expectedLevel: log.DebugLevel},
		{name: "info_level", logLevel: "info", expectedLevel: log.InfoLevel},
		{name: "warn_level", logLevel: "warn", expectedLevel: log.WarnLevel},
		{name: "warning_level_alias", logLevel: "warning", expectedLevel: log.WarnLevel},
		{name: "error_level", logLevel: "error", expectedLevel: log.ErrorLevel},
		{name: "default_empty_level", logLevel: "", expectedLevel: log.InfoLevel},
		{name: "default_invalid_level", logLevel: "verbose", expectedLevel: log.InfoLevel},
		{name: "case_insensitive", logLevel: " DEBUG ", expectedLevel: log.DebugLevel},
	}

	original := Logger
	t.Cleanup(func() { Logger = original })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.logLevel)
			InitLogger()

			require.NotNil(t, Logger)
			assert.Equal(t, tt.expectedLevel, Logger.GetLevel())
		})
	}
}

func Test_Logger_Configure_WritesToOutput(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	var buf bytes.Buffer
	logger := Configure(&buf, WarnLevel)

	logger.Info("hidden")
	logger.Warn("partition unload skipped", "chunk_x", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "partition unload skipped")
	assert.Contains(t, out, "chunk_x=3")
}

func Test_Logger_OrDefault(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	Logger = log.New(io.Discard)
	custom := log.New(io.Discard)

	assert.Same(t, custom, OrDefault(custom))
	assert.Same(t, Logger, OrDefault(nil))
}

func Test_Logger_GetLogger_InitializesLazily(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	Logger = nil
	assert.NotNil(t, GetLogger())
	assert.NotNil(t, WithFields("chunk_x", 1, "chunk_y", 2))
}
