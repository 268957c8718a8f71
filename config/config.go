package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds all runtime settings. Values come from an optional YAML
// file; environment variables override the file (see applyEnv).
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Catalog CatalogConfig `yaml:"catalog"`
	Session SessionConfig `yaml:"session"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LLMConfig struct {
	APIKey         string  `yaml:"api_key"`
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	MaxTokens      int     `yaml:"max_tokens"`
	TopP           float64 `yaml:"top_p"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

type CatalogConfig struct {
	MenuPath        string `yaml:"menu_path"`
	RefreshSchedule string `yaml:"refresh_schedule"`
}

type SessionConfig struct {
	Secret   string `yaml:"secret"`
	TTLHours int    `yaml:"ttl_hours"`
}

// Load reads the YAML config file at path (if it exists) and applies
// environment overrides. A missing file is not an error: everything
// has a default and can be set through the environment alone.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		},
		LLM: LLMConfig{
			BaseURL:        "https://api.groq.com/openai/v1",
			Model:          "llama-3.3-70b-versatile",
			Temperature:    0.7,
			MaxTokens:      1024,
			TopP:           0.9,
			TimeoutSeconds: 30,
		},
		Catalog: CatalogConfig{
			RefreshSchedule: "0 3 * * *",
		},
		Session: SessionConfig{
			Secret:   "dev-session-secret",
			TTLHours: 24,
		},
	}
}

func (c *Config) applyEnv() {
	c.Server.Port = GetEnv("PORT", c.Server.Port)
	c.LLM.APIKey = GetEnv("GROQ_API_KEY", c.LLM.APIKey)
	c.LLM.BaseURL = GetEnv("LLM_BASE_URL", c.LLM.BaseURL)
	c.LLM.Model = GetEnv("LLM_MODEL", c.LLM.Model)
	c.Catalog.MenuPath = GetEnv("MENU_PATH", c.Catalog.MenuPath)
	c.Session.Secret = GetEnv("SESSION_SECRET", c.Session.Secret)
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Session.TTLHours = n
		}
	}
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.LLM.TimeoutSeconds = n
		}
	}
}

// LLMTimeout returns the configured LLM request timeout as a duration.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}

// SessionTTL returns the configured session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// GetEnv returns the value of the environment variable key, or fallback
// if it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
