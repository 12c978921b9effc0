package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Serper SerperConfig
	LLM    LLMConfig
	Batch  BatchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SerperConfig holds Serper search API configuration
type SerperConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Country           string        `mapstructure:"country"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// LLMConfig holds language-model configuration. The base URL points at any
// OpenAI-compatible chat-completions endpoint (Groq by default).
type LLMConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	IntentTemperature float64       `mapstructure:"intent_temperature"`
	SEOTemperature    float64       `mapstructure:"seo_temperature"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	SkipUnusableRows bool `mapstructure:"skip_unusable_rows"`
	MaxRows          int  `mapstructure:"max_rows"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/veronica/")

	// Environment variable settings
	v.SetEnvPrefix("VERONICA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Serper defaults
	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("serper.country", "us")
	v.SetDefault("serper.timeout", "30s")
	v.SetDefault("serper.requests_per_second", 2.0)
	v.SetDefault("serper.burst", 5)

	// LLM defaults
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.model", "llama3-70b-8192")
	v.SetDefault("llm.intent_temperature", 0.0)
	v.SetDefault("llm.seo_temperature", 0.7)
	v.SetDefault("llm.timeout", "60s")

	// Batch defaults
	v.SetDefault("batch.skip_unusable_rows", true)
	v.SetDefault("batch.max_rows", 500)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Serper.APIKey == "" {
		return fmt.Errorf("serper API key is required (set VERONICA_SERPER_API_KEY)")
	}

	if config.LLM.APIKey == "" {
		return fmt.Errorf("LLM API key is required (set VERONICA_LLM_API_KEY)")
	}

	if config.Serper.RequestsPerSecond <= 0 {
		return fmt.Errorf("serper requests_per_second must be positive, got: %v", config.Serper.RequestsPerSecond)
	}

	if config.Batch.MaxRows < 0 {
		return fmt.Errorf("batch max_rows must not be negative, got: %d", config.Batch.MaxRows)
	}

	return nil
}
