package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SEOGEN"

// ConfigFileEnv names the environment variable holding an explicit config file path.
const ConfigFileEnv = "SEOGEN_CONFIG_FILE"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile is Load with an explicit YAML config file. An empty path searches
// for config.yaml in the working directory and ./config instead; a missing
// file is not an error in that case.
func LoadFile(path string) (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.request_timeout_seconds", 120)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.model_name", "gemini-1.5-flash")
	v.SetDefault("llm.temperature", 0.5)
	v.SetDefault("llm.top_p", 0.94)
	v.SetDefault("llm.max_output_tokens", 1024)
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.attempt_timeout_seconds", 30)
	v.SetDefault("llm.requests_per_second", 0)
	v.SetDefault("llm.prompt_template_dir", "")

	v.SetDefault("content.default_company_name", "Prachine Bangla Online")
	v.SetDefault("content.default_pharmacy_name", "Prachine Bangla Online Pharmacy")
	v.SetDefault("content.default_shop_name", "Prachine Bangla Online Shop")
	v.SetDefault("content.max_title_length", 80)
	v.SetDefault("content.max_description_length", 160)
	v.SetDefault("content.medicine_keywords", []string{"medicine", "tablet", "capsule", "syrup", "injection"})
	v.SetDefault("content.banned_terms", []string{
		"Daraz", "Aroggga.com", "Arogga", "Daraz.com.bd",
		"MedEx", "Medex.com", "Medex.com.bd", "MedEasy",
	})
	v.SetDefault("content.competitor_attribution", "at Arogga Online Pharmacy")

	v.SetDefault("scraper.timeout_seconds", 30)
	v.SetDefault("scraper.max_retries", 3)
	v.SetDefault("scraper.backoff_initial_ms", 500)
	v.SetDefault("scraper.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("scraper.allow_insecure_tls_fallback", true)
}
