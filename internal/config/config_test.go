package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := defaults()

	err := applyEnv(&cfg, envMap(map[string]string{
		"PORT":               "9090",
		"PLAN_PROVIDER":      "gemini",
		"ASSISTANT_PROVIDER": "openai",
		"OPENAI_API_KEY":     "sk-test",
		"GOOGLE_API_KEY":     "g-test",
		"CORS_ORIGINS":       "https://a.example, https://b.example,",
		"PLAN_JSON_MODE":     "false",
		"VIBE_MIN_CHARS":     "50",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.PlanProvider)
	assert.Equal(t, ProviderOpenAI, cfg.AssistantProvider)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.PlanJSONMode)
	assert.Equal(t, 50, cfg.VibeMinChars)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_BadValues(t *testing.T) {
	for _, env := range []map[string]string{
		{"PLAN_JSON_MODE": "maybe"},
		{"VIBE_MIN_CHARS": "twenty"},
	} {
		cfg := defaults()
		assert.Error(t, applyEnv(&cfg, envMap(env)))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults need both keys", mutate: func(c *Config) {}, wantErr: "OPENAI_API_KEY not set"},
		{
			name: "openai only",
			mutate: func(c *Config) {
				c.AssistantProvider = ProviderOpenAI
				c.OpenAIAPIKey = "sk"
			},
		},
		{
			name: "unknown provider",
			mutate: func(c *Config) {
				c.PlanProvider = "anthropic"
				c.GoogleAPIKey = "g"
			},
			wantErr: `unknown provider "anthropic"`,
		},
		{
			name: "gemini key missing",
			mutate: func(c *Config) {
				c.OpenAIAPIKey = "sk"
			},
			wantErr: "GOOGLE_API_KEY not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fairfare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
plan_provider: gemini
assistant_provider: gemini
google_api_key: from-file
gemini_model: gemini-2.5-flash
plan_json_mode: false
`), 0o600))

	t.Chdir(dir)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7001")
	t.Setenv("PLAN_PROVIDER", "")
	t.Setenv("ASSISTANT_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("PLAN_JSON_MODE", "")
	t.Setenv("VIBE_MIN_CHARS", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7001", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.PlanProvider)
	assert.Equal(t, "from-file", cfg.GoogleAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.False(t, cfg.PlanJSONMode)
	assert.Equal(t, 20, cfg.VibeMinChars)
}
