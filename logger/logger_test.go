// SPDX-License-Identifier: MIT
package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlopt/logger"
)

func TestNew_RespectsLevel(t *testing.T) {
	l, err := logger.New(zap.NewAtomicLevelAt(zap.WarnLevel))
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))

	level := zap.NewAtomicLevelAt(zap.ErrorLevel)
	l = logger.Must(level)
	assert.False(t, l.Core().Enabled(zap.WarnLevel))
	level.SetLevel(zap.DebugLevel)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
