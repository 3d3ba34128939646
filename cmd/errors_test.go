package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestPrintError(t *testing.T) {
	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{"normal mode without error", "User friendly message", nil, false, "User friendly message"},
		{"verbose mode with error", "User friendly message", errors.New("technical details"), true, "Error: technical details"},
		{"normal mode with technical error", "User friendly message", errors.New("technical details"), false, "User friendly message"},
		{"verbose mode without error", "User friendly message", nil, true, "User friendly message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			var buf bytes.Buffer
			PrintError(&buf, tt.userMsg, tt.technicalErr)

			assert.Contains(t, buf.String(), tt.expectedOut)
		})
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		err         error
		shouldPrint bool
	}{
		{"debug level with error", "debug", errors.New("error details"), true},
		{"debug level without error", "debug", nil, true},
		{"warn level", "warn", errors.New("error details"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := slog.Default()
			defer slog.SetDefault(orig)

			var buf bytes.Buffer
			slog.SetDefault(logger.New(&buf, tt.level, "text"))

			LogError("close data file", tt.err)

			if !tt.shouldPrint {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), "close data file")
			if tt.err != nil {
				assert.Contains(t, buf.String(), "error details")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	parseErr := &store.ParseError{Path: "/data/tasks.yaml", Format: store.FormatYAML, Err: errors.New("bad indent")}

	assert.Equal(t,
		"Error: /data/tasks.yaml is not a valid yaml task file. Fix or move it, then try again.",
		userMessage(fmt.Errorf("load: %w", parseErr)))
	assert.Contains(t, userMessage(fmt.Errorf("%w: tasks.json", ErrDataFileLocked)), "another todolist command")
	assert.Equal(t, "Error: boom", userMessage(errors.New("boom")))
}
