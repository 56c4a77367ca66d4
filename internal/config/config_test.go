package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "none.env")
}

func TestLoad_Defaults(t *testing.T) {
	// vacío cuenta como no definido
	for _, k := range []string{"LLM_PROVIDER", "LLM_TIMEOUT", "BREED_INFO_PATH", "MAX_UPLOAD_BYTES", "PORT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "data/breed_info.json", cfg.BreedInfoPath)
	assert.EqualValues(t, 10<<20, cfg.MaxUploadBytes)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GEMINI_API_KEY=from-file\nLLM_MODEL=file-model\n"), 0o600))

	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_BOOTSTRAP", "true")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.GeminiAPIKey)
	assert.Equal(t, "env-model", cfg.Model)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.CatalogBootstrap)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := Config{Timeout: time.Second, MaxUploadBytes: 1}

	tests := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"gemini without key", func(c *Config) { c.Provider = ProviderGemini }, ErrMissingAPIKey},
		{"openai without key", func(c *Config) { c.Provider = ProviderOpenAI }, ErrMissingAPIKey},
		{"ollama needs no key", func(c *Config) { c.Provider = ProviderOllama }, nil},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, ErrUnknownProvider},
		{"bad timeout", func(c *Config) { c.Provider = ProviderOllama; c.Timeout = 0 }, ErrInvalidTimeout},
		{"bad upload", func(c *Config) { c.Provider = ProviderOllama; c.MaxUploadBytes = 0 }, ErrInvalidUpload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mut(&c)
			err := c.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
