package log

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	ConfigureLogger("debug")
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	ConfigureLogger("not-a-level")
	assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		formatter     string
		expectedLevel logrus.Level
		expectedErr   string
	}{
		{
			name:          "Debug level with text formatter",
			level:         "debug",
			formatter:     "text",
			expectedLevel: logrus.DebugLevel,
		},
		{
			name:          "Warning level with json formatter",
			level:         "warning",
			formatter:     "json",
			expectedLevel: logrus.WarnLevel,
		},
		{
			name:        "Invalid level",
			level:       "loud",
			formatter:   "text",
			expectedErr: "invalid log level: loud",
		},
		{
			name:        "Invalid formatter",
			level:       "info",
			formatter:   "xml",
			expectedErr: "invalid log formatter: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ConfigureLogger("info")
			err := Apply(GetLogger(), tt.level, tt.formatter)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, GetLogger().GetLevel())
			if tt.formatter == "json" {
				assert.IsType(t, &logrus.JSONFormatter{}, GetLogger().Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, GetLogger().Formatter)
			}
		})
	}
}

func TestMiniLogFormat(t *testing.T) {
	ConfigureLogger("info")
	MiniLogFormat()

	formatter, ok := GetLogger().Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.True(t, formatter.DisableTimestamp)
	assert.True(t, formatter.DisableColors)
}

func TestDefaultFormat(t *testing.T) {
	ConfigureLogger("info")

	formatter, ok := GetLogger().Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.Equal(t, isTerminal(os.Stdout), formatter.ForceColors)
	assert.Equal(t, !isTerminal(os.Stdout), formatter.DisableColors)
	assert.True(t, formatter.FullTimestamp)
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTerminal(f))
}
