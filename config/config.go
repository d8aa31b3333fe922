package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "RECIPELENS"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RecipeDB  ProviderConfig  `mapstructure:"recipedb"`
	FlavorDB  ProviderConfig  `mapstructure:"flavordb"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Matching  MatchingConfig  `mapstructure:"matching"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ProviderConfig holds configuration for one Foodoscope API
type ProviderConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxAttempts       int           `mapstructure:"max_attempts"`
}

// Configured reports whether the provider can be called
func (p ProviderConfig) Configured() bool {
	return p.APIKey != "" && p.BaseURL != ""
}

// RateLimitConfig holds inbound rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// MatchingConfig tunes the analysis pipeline
type MatchingConfig struct {
	AnalyzeSubstitutionLimit int           `mapstructure:"analyze_substitution_limit"`
	DetailSubstitutionLimit  int           `mapstructure:"detail_substitution_limit"`
	LookupTimeout            time.Duration `mapstructure:"lookup_timeout"`
	LookupConcurrency        int           `mapstructure:"lookup_concurrency"`
	MissingDisplayLimit      int           `mapstructure:"missing_display_limit"`
	MinMatch                 float64       `mapstructure:"min_match"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"` // empty logs to stdout only
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Load loads configuration from environment variables and an optional config.yaml.
// A .env file in the working directory is loaded first; variables already
// set in the process are not overwritten by it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/recipelens/")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// One Foodoscope key usually covers both APIs
	if config.FlavorDB.APIKey == "" {
		config.FlavorDB.APIKey = config.RecipeDB.APIKey
	}

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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// RecipeDB defaults
	v.SetDefault("recipedb.api_key", "")
	v.SetDefault("recipedb.base_url", "https://api.foodoscope.com/recipe2-api")
	v.SetDefault("recipedb.timeout", "8s")
	v.SetDefault("recipedb.requests_per_second", 5)
	v.SetDefault("recipedb.burst", 5)
	v.SetDefault("recipedb.max_attempts", 3)

	// FlavorDB defaults
	v.SetDefault("flavordb.api_key", "")
	v.SetDefault("flavordb.base_url", "https://api.foodoscope.com/flavordb")
	v.SetDefault("flavordb.timeout", "10s")
	v.SetDefault("flavordb.requests_per_second", 5)
	v.SetDefault("flavordb.burst", 5)
	v.SetDefault("flavordb.max_attempts", 3)

	// Inbound rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
	v.SetDefault("ratelimit.burst", 10)

	// Matching defaults
	v.SetDefault("matching.analyze_substitution_limit", 3)
	v.SetDefault("matching.detail_substitution_limit", 3)
	v.SetDefault("matching.lookup_timeout", "10s")
	v.SetDefault("matching.lookup_concurrency", 1)
	v.SetDefault("matching.missing_display_limit", 5)
	v.SetDefault("matching.min_match", 50)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 30)
}

// bindLegacyEnv also accepts the unprefixed variable names used by older deployments
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"recipedb.api_key":  {envPrefix + "_RECIPEDB_API_KEY", "API_KEY"},
		"recipedb.base_url": {envPrefix + "_RECIPEDB_BASE_URL", "RECIPE_BASE_URL"},
		"flavordb.base_url": {envPrefix + "_FLAVORDB_BASE_URL", "FLAVOR_BASE_URL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required (set %s_SERVER_PORT)", envPrefix)
	}

	switch config.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("server environment must be 'development', 'production' or 'test', got: %s", config.Server.Environment)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limits cannot be negative")
	}

	m := config.Matching
	if m.AnalyzeSubstitutionLimit < 0 || m.DetailSubstitutionLimit < 0 {
		return fmt.Errorf("substitution limits cannot be negative")
	}
	if m.LookupConcurrency < 1 {
		return fmt.Errorf("lookup concurrency must be at least 1, got: %d", m.LookupConcurrency)
	}
	if m.MinMatch < 0 || m.MinMatch > 100 {
		return fmt.Errorf("min match must be between 0 and 100, got: %g", m.MinMatch)
	}

	switch config.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log format must be 'json' or 'console', got: %s", config.Log.Format)
	}

	return nil
}
