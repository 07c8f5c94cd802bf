package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"routing": map[string]any{
			"defaultSpeedKmh": 30,
			"baseUrl":         "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ROUTING_DEFAULTSPEEDKMH", want: "routing.defaultSpeedKmh"},
		{envKey: "ROUTING_BASEURL", want: "routing.baseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
routing:
  provider: osrm
  timeout: 10s
  defaultSpeedKmh: 30
seed:
  enabled: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), yaml, 0o600))
	t.Chdir(dir)
	t.Setenv("ROUTING_TIMEOUT", "3s")
	t.Setenv("ROUTING_DEFAULTSPEEDKMH", "45")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)
	require.NotNil(t, cfg.Routing)
	assert.Equal(t, "osrm", cfg.Routing.Provider)
	assert.Equal(t, 3*time.Second, cfg.Routing.Timeout)
	assert.InDelta(t, 45.0, cfg.Routing.DefaultSpeedKmh, 1e-9)
	require.NotNil(t, cfg.Seed)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_0_PASSWORD", "secret")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	t.Setenv("POSTGRES_REPLICAS_1_PORT", "5434")
	// Incomplete entries end the list.
	t.Setenv("POSTGRES_REPLICAS_2_HOST", "replica-c")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "secret", replicas[0].Password)
	assert.Equal(t, "replica-b", replicas[1].Host)
	assert.Empty(t, replicas[1].UserName)
}
