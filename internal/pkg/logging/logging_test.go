package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		Name     string
		Input    string
		Expected zapcore.Level
	}{
		{"debug", "debug", zapcore.DebugLevel},
		{"mixed case and padding", "  WaRn ", zapcore.WarnLevel},
		{"error", "error", zapcore.ErrorLevel},
		{"numeric", "-1", zapcore.DebugLevel},
	}

	for _, aTestCase := range testCases {
		t.Run(aTestCase.Name, func(t *testing.T) {
			level, err := ParseLevel(aTestCase.Input)
			require.NoError(t, err)
			assert.Equal(t, aTestCase.Expected, level)
		})
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Setenv(LevelEnvVar, "")

	logger, err := New("")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	t.Setenv(LevelEnvVar, "error")
	logger, err = New("debug")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))

	// The environment wins even over an invalid configured level.
	_, err = New("nonsense")
	require.NoError(t, err)

	t.Setenv(LevelEnvVar, "")
	_, err = New("nonsense")
	require.Error(t, err)
}
