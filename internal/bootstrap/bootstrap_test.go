package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samigvnc/csgo-frontend/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Environment:         "dev",
		SessionFile:         filepath.Join(dir, "session.json"),
		BandsFile:           filepath.Join(dir, "missing_bands.json"),
		ContractsFile:       filepath.Join(dir, "missing_contracts.json"),
		StripLength:         40,
		WinIndex:            30,
		SpinDuration:        time.Second,
		EventDeadLetterPath: filepath.Join(dir, "dl", "events.jsonl"),
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2026-01-01_00-00-00.log",
		"session_2026-01-02_00-00-00.log",
		"session_2026-01-03_00-00-00.log",
		"notes.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}

	cleanupLogs(dir, 2)

	_, err := os.Stat(filepath.Join(dir, names[0]))
	assert.True(t, os.IsNotExist(err), "oldest log should be removed")
	for _, n := range names[1:] {
		assert.FileExists(t, filepath.Join(dir, n))
	}
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)

	sys, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, sys.Publisher)

	assert.FileExists(t, cfg.EventDeadLetterPath)
	require.NoError(t, sys.Publisher.Shutdown(context.Background()))
	require.NoError(t, sys.DeadLetter.Close())
}

func TestLoadGameConfig_FallsBackToDefaults(t *testing.T) {
	cfg := testConfig(t)

	gc, err := LoadGameConfig(cfg, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, gc.Rules)
	assert.Equal(t, 40, gc.Engine.StripConfig().Length)
	assert.Equal(t, 30, gc.Engine.StripConfig().WinIndex)
	assert.Equal(t, time.Second, gc.Engine.SpinDuration())
}

func TestLoadGameConfig_RejectsBadStrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.WinIndex = cfg.StripLength

	_, err := LoadGameConfig(cfg, nil)
	assert.Error(t, err)
}

func TestInitializeStores(t *testing.T) {
	cfg := testConfig(t)

	stores, err := InitializeStores(cfg)
	require.NoError(t, err)

	assert.False(t, stores.Session.LoggedIn())
	assert.NotNil(t, stores.Locks)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
