package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.MasterSecret = "s3cret"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{MasterSecret: "from-env"}},
		&StructuredConfig{App: App{MasterSecret: "from-flags", Version: "1.0.0"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.MasterSecret)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 30, cfg.TOTP.Period)
	assert.Equal(t, 2, cfg.TOTP.Window)
	assert.Equal(t, "rfid.json", cfg.Storage.Files.TagDBPath)
}

func TestBuild_RequiresMasterSecret(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_LoadsReferencedFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"master_secret": "json-secret"},
		"server": map[string]any{"request_timeout": "9s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.MasterSecret)
	assert.Equal(t, 9*time.Second, cfg.Server.RequestTimeout)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no secret", mutate: func(c *StructuredConfig) { c.App.MasterSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "too many digits", mutate: func(c *StructuredConfig) { c.TOTP.Digits = 12 }, wantErr: ErrInvalidTOTPConfigs},
		{name: "no storage", mutate: func(c *StructuredConfig) { c.Storage = Storage{} }, wantErr: ErrInvalidStorageConfigs},
		{name: "dsn only", mutate: func(c *StructuredConfig) { c.Storage = Storage{DB: DB{DSN: "sqlite://x.db"}} }},
		{name: "no listeners", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "workers without queue", mutate: func(c *StructuredConfig) { c.Workers = Workers{Count: 2} }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
