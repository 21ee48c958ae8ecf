package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/infinityCounter2/basis-stream/internal/registry"
	"github.com/infinityCounter2/basis-stream/internal/session"
	"github.com/stretchr/testify/require"
)

// noEnvFile keeps a stray .env in the package dir from leaking into tests.
func noEnvFile(t *testing.T) string {
	return "--env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{noEnvFile(t)})
	require.NoError(t, err)

	require.Equal(t, 8765, cfg.Server.Port)
	require.Equal(t, 500*time.Millisecond, cfg.Server.PushInterval)
	require.Equal(t, 30*time.Second, cfg.Server.PingInterval)
	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	require.True(t, cfg.Persistence.Enabled)
	require.Equal(t, "data", cfg.Persistence.Dir)
	require.Equal(t, 7, cfg.Persistence.RetentionDays)
	require.Equal(t, "", cfg.Redis.Addr)
	require.Equal(t, "basis", cfg.Redis.ChannelPrefix)

	rp, err := cfg.Instruments.RegistryParams()
	require.NoError(t, err)
	require.Equal(t, registry.DefaultFamilies, rp.Families)
	require.Equal(t, registry.DefaultTenors, rp.Tenors)
	require.Equal(t, ".CFE", rp.MarketSuffix)

	clock, err := cfg.Session.Clock()
	require.NoError(t, err)
	require.Equal(t, session.Windows(session.DefaultWindows), clock)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "basis.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 9100
  push_interval: 250ms
persistence:
  dir: /var/lib/basis
log:
  level: debug
instruments:
  families: ["IC:000905.SH"]
  tenors: ["00", "01"]
`), 0o644))

	t.Setenv("BASIS_SERVER_PORT", "9200")
	t.Setenv("BASIS_SESSION_WINDOWS", "09:00-10:00,21:00-23:00")

	cfg, err := Load([]string{noEnvFile(t), "--config", file, "--log-level", "warn"})
	require.NoError(t, err)

	require.Equal(t, 9200, cfg.Server.Port, "Environment beats the file")
	require.Equal(t, 250*time.Millisecond, cfg.Server.PushInterval)
	require.Equal(t, "/var/lib/basis", cfg.Persistence.Dir)
	require.Equal(t, "warn", cfg.Log.Level, "Flags beat the file")
	require.Equal(t, []string{"IC:000905.SH"}, cfg.Instruments.Families)
	require.Equal(t, []string{"00", "01"}, cfg.Instruments.Tenors)
	require.Equal(t, []string{"09:00-10:00", "21:00-23:00"}, cfg.Session.Windows)
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("BASIS_REDIS_ADDR=localhost:6379\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BASIS_REDIS_ADDR") })

	cfg, err := Load([]string{"--env-file", envFile})
	require.NoError(t, err)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "port out of range", args: []string{"--port", "70000"}},
		{name: "unknown log level", args: []string{"--log-level", "loud"}},
		{name: "bad session window", args: []string{"--market-open", "9am-10am"}},
		{name: "unknown flag", args: []string{"--nope"}},
	}

	for _, tc := range testCases {
		_, err := Load(append([]string{noEnvFile(t)}, tc.args...))
		require.Errorf(t, err, "%s", tc.name)
	}
}

func TestRegistryParams_BadFamily(t *testing.T) {
	_, err := InstrumentsConfig{Families: []string{"IC"}, Tenors: []string{"00"}}.RegistryParams()
	require.Error(t, err)

	_, err = InstrumentsConfig{Families: []string{"IC:"}, Tenors: []string{"00"}}.RegistryParams()
	require.Error(t, err)
}
