package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		env              string
		wantLevel        zapcore.Level
		wantDisableStack bool
		wantCaller       bool
		wantCallerKey    string
	}{
		{
			name:             "development",
			env:              "development",
			wantLevel:        zap.DebugLevel,
			wantDisableStack: true,
			wantCaller:       false,
			wantCallerKey:    zapcore.OmitKey,
		},
		{
			name:             "debug",
			env:              " DEBUG ",
			wantLevel:        zap.DebugLevel,
			wantDisableStack: false,
			wantCaller:       true,
			wantCallerKey:    "caller",
		},
		{
			name:             "production",
			env:              "production",
			wantLevel:        zap.InfoLevel,
			wantDisableStack: true,
			wantCaller:       false,
			wantCallerKey:    zapcore.OmitKey,
		},
		{
			name:             "fallback",
			env:              "unknown",
			wantLevel:        zap.InfoLevel,
			wantDisableStack: true,
			wantCaller:       false,
			wantCallerKey:    zapcore.OmitKey,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, withCaller := buildConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, tc.wantDisableStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantCallerKey, cfg.EncoderConfig.CallerKey)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, "level", cfg.EncoderConfig.LevelKey)
			require.Equal(t, "msg", cfg.EncoderConfig.MessageKey)
			require.Equal(t, "logger", cfg.EncoderConfig.NameKey)
			require.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		})
	}
}

func TestNewReturnsLogger(t *testing.T) {
	t.Parallel()

	l, err := New("addressbook", "production")
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Infow("startup", "component", "logger")
	l.SafeSync()
}

func TestWithReturnsScopedLogger(t *testing.T) {
	t.Parallel()

	l, err := New("addressbook", "production")
	require.NoError(t, err)

	scoped := l.With("component", "book")
	require.NotNil(t, scoped)
	scoped.Infow("scoped entry")
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()

	require.False(t, isIgnorableSyncError(nil))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: invalid argument")))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: inappropriate ioctl for device")))
	require.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}

func TestSafeSyncNilReceiver(t *testing.T) {
	t.Parallel()

	var l *Logger
	l.SafeSync()
}
