package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port        string   `yaml:"port"`
	DatabaseURL string   `yaml:"database_url"`
	CORSOrigins []string `yaml:"cors_origins"`

	// Кто строит план, кто делает разбор продавца и чат.
	PlanProvider      string `yaml:"plan_provider"`
	AssistantProvider string `yaml:"assistant_provider"`

	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIModel   string `yaml:"openai_model"`
	OpenAIBaseURL string `yaml:"openai_base_url"`

	GoogleAPIKey string `yaml:"google_api_key"`
	GeminiModel  string `yaml:"gemini_model"`

	PlanJSONMode bool `yaml:"plan_json_mode"`
	VibeMinChars int  `yaml:"vibe_min_chars"`
}

func defaults() Config {
	return Config{
		Port:              "8080",
		CORSOrigins:       []string{"*"},
		PlanProvider:      ProviderOpenAI,
		AssistantProvider: ProviderGemini,
		PlanJSONMode:      true,
		VibeMinChars:      20,
	}
}

// Load: дефолты -> .env -> YAML из CONFIG_FILE -> переменные окружения.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &cfg.Port)
	str("DATABASE_URL", &cfg.DatabaseURL)
	str("PLAN_PROVIDER", &cfg.PlanProvider)
	str("ASSISTANT_PROVIDER", &cfg.AssistantProvider)
	str("OPENAI_API_KEY", &cfg.OpenAIAPIKey)
	str("OPENAI_MODEL", &cfg.OpenAIModel)
	str("OPENAI_BASE_URL", &cfg.OpenAIBaseURL)
	str("GOOGLE_API_KEY", &cfg.GoogleAPIKey)
	str("GEMINI_MODEL", &cfg.GeminiModel)

	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}

	if v, ok := lookup("PLAN_JSON_MODE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PLAN_JSON_MODE: %w", err)
		}
		cfg.PlanJSONMode = b
	}

	if v, ok := lookup("VIBE_MIN_CHARS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VIBE_MIN_CHARS: %w", err)
		}
		cfg.VibeMinChars = n
	}

	return nil
}

func (c Config) Validate() error {
	var errs []error

	for name, p := range map[string]string{"plan_provider": c.PlanProvider, "assistant_provider": c.AssistantProvider} {
		if p != ProviderOpenAI && p != ProviderGemini {
			errs = append(errs, fmt.Errorf("%s: unknown provider %q", name, p))
		}
	}

	if c.Uses(ProviderOpenAI) && c.OpenAIAPIKey == "" {
		errs = append(errs, errors.New("OPENAI_API_KEY not set"))
	}
	if c.Uses(ProviderGemini) && c.GoogleAPIKey == "" {
		errs = append(errs, errors.New("GOOGLE_API_KEY not set"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is empty"))
	}

	return errors.Join(errs...)
}

func (c Config) Uses(provider string) bool {
	return c.PlanProvider == provider || c.AssistantProvider == provider
}
