package common

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "console format", format: "console"},
		{name: "json format", format: "json"},
		{name: "empty defaults to console", format: ""},
		{name: "unknown format rejected", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLogger(slog.LevelInfo, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLogHelpersDoNotPanic(t *testing.T) {
	require.NoError(t, SetupLogger(slog.LevelError, "console"))

	LogInfo("test message", Fields{"key": "value"})
	LogError(errors.New("boom"), "test error", Fields{"key": "value"})
}
