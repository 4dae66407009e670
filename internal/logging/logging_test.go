package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/seqclust/internal/logging"
)

func TestNew(t *testing.T) {
	l, err := logging.New("prod", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = logging.New("dev", "")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("verbose", "info")
	assert.Error(t, err)

	_, err = logging.New("dev", "chatty")
	assert.Error(t, err)
}
