package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Provider struct {
		// Name selects the model provider: "anthropic", "gemini" or "mock".
		// Mock mode is a deployment decision, never inferred from requests.
		Name string `yaml:"name"`

		Anthropic struct {
			ApiKey    string `yaml:"apiKey"`
			BaseURL   string `yaml:"baseURL"`
			Model     string `yaml:"model"`
			MaxTokens int    `yaml:"maxTokens"`
		} `yaml:"anthropic"`

		Gemini struct {
			ApiKey string `yaml:"apiKey"`
			Model  string `yaml:"model"`
		} `yaml:"gemini"`
	} `yaml:"provider"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	RateLimit struct {
		Budget        int  `yaml:"budget"`
		WindowSeconds int  `yaml:"windowSeconds"`
		Disabled      bool `yaml:"disabled"`
	} `yaml:"rateLimit"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig reads the configuration file and applies environment overrides
// for values that usually live outside the file (API keys, connection URIs).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Provider.Anthropic.ApiKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Provider.Gemini.ApiKey = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		c.Database.URI = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Address = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Provider.Name == "" {
		c.Provider.Name = "anthropic"
	}
	if c.Provider.Anthropic.Model == "" {
		c.Provider.Anthropic.Model = "claude-sonnet-4-20250514"
	}
	if c.Provider.Anthropic.MaxTokens == 0 {
		c.Provider.Anthropic.MaxTokens = 8192
	}
	if c.Provider.Gemini.Model == "" {
		c.Provider.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Redis.Address == "" {
		c.Redis.Address = "localhost:6379"
	}
	if c.RateLimit.Budget == 0 {
		c.RateLimit.Budget = 3
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 3600
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
