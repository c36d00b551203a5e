package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"cli"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "sqlite", cfg.Driver)
	require.Equal(t, "hiresphere.db", cfg.DSN)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-d", "memory", "-dsn", "ignored", "-t", "2")

	cfg := LoadConfig()
	require.Equal(t, "memory", cfg.Driver)
	require.Equal(t, "ignored", cfg.DSN)
	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{"driver":"postgres","dsn":"postgres://x","session_ttl_hours":48}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	withArgs(t, "-c", f.Name())

	cfg := LoadConfig()
	require.Equal(t, "postgres", cfg.Driver)
	require.Equal(t, "postgres://x", cfg.DSN)
	require.Equal(t, 48*time.Hour, cfg.SessionTTL)
	// Field absent from the JSON keeps its default.
	require.Equal(t, "hiresphere-dev-secret", cfg.SessionSecret)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{"driver":"postgres"}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	withArgs(t, "-c", f.Name(), "-d", "sqlite")

	cfg := LoadConfig()
	require.Equal(t, "sqlite", cfg.Driver)
}
