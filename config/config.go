package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the campaign service clients and the
// development tools built on them
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	App           AppConfig
	APIs          APIsConfig
	HTTP          HTTPConfig
	Cache         CacheConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	StubServer    StubServerConfig
}

type AppConfig struct {
	Env string `validate:"oneof=development production test"`
}

// APIsConfig holds the base URL of every remote campaign service
type APIsConfig struct {
	CampaignsManagementBaseURL  string `validate:"required,url"`
	SignUpsBaseURL              string `validate:"required,url"`
	ActivitiesDiscoveryBaseURL  string `validate:"required,url"`
	ActivitiesManagementBaseURL string `validate:"required,url"`
	ChallengesGroupingsBaseURL  string `validate:"required,url"`
}

type HTTPConfig struct {
	TimeoutSeconds        int `validate:"gt=0"`
	RetryCount            int `validate:"gte=0,lte=10"`
	RetryDelayMillis      int `validate:"gte=0"`
	CircuitBreakerEnabled bool
}

type CacheConfig struct {
	ReferenceTTLSeconds int `validate:"gte=0"` // 0 disables the reference data cache
}

type LoggingConfig struct {
	Level string `validate:"oneof=debug info warn error"`
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint string
	ServiceName      string
	ServiceVersion   string
}

type StubServerConfig struct {
	Port           string `validate:"required,numeric"`
	AllowedOrigins []string
}

var validate = validator.New()

// LoadOption overrides a default before configuration is read
type LoadOption func(v *viper.Viper)

// WithDefault replaces the built-in default for key
func WithDefault(key string, value any) LoadOption {
	return func(v *viper.Viper) {
		v.SetDefault(key, value)
	}
}

var apiBaseURLKeys = []string{
	"CHARITIES_CAMPAIGNS_MANAGEMENT_API_BASE_URL",
	"CHARITIES_CAMPAIGNS_SIGNUPS_API_BASE_URL",
	"FUNDRAISERS_ACTIVITIES_DISCOVERY_API_BASE_URL",
	"FUNDRAISERS_ACTIVITIES_MANAGEMENT_API_BASE_URL",
	"FUNDRAISERS_CHALLENGES_GROUPINGS_API_BASE_URL",
}

// Load reads configuration from environment variables and an optional .env file.
// In development every API base URL defaults to the local stub server.
func Load(opts ...LoadOption) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	v.SetDefault("HTTP_RETRY_COUNT", 3)
	v.SetDefault("HTTP_RETRY_DELAY_MS", 500)
	v.SetDefault("HTTP_CIRCUIT_BREAKER_ENABLED", false)
	v.SetDefault("REFERENCE_CACHE_TTL_SECONDS", 3600)
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "campaign-signup-helper")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("STUB_SERVER_PORT", "8090")
	v.SetDefault("STUB_SERVER_ALLOWED_ORIGINS", "http://localhost:3000")
	for _, opt := range opts {
		opt(v)
	}

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	if v.GetString("APP_ENV") == "development" {
		stubURL := "http://localhost:" + v.GetString("STUB_SERVER_PORT")
		for _, key := range apiBaseURLKeys {
			v.SetDefault(key, stubURL)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("APP_ENV"),
		},
		APIs: APIsConfig{
			CampaignsManagementBaseURL:  v.GetString(apiBaseURLKeys[0]),
			SignUpsBaseURL:              v.GetString(apiBaseURLKeys[1]),
			ActivitiesDiscoveryBaseURL:  v.GetString(apiBaseURLKeys[2]),
			ActivitiesManagementBaseURL: v.GetString(apiBaseURLKeys[3]),
			ChallengesGroupingsBaseURL:  v.GetString(apiBaseURLKeys[4]),
		},
		HTTP: HTTPConfig{
			TimeoutSeconds:        v.GetInt("HTTP_TIMEOUT_SECONDS"),
			RetryCount:            v.GetInt("HTTP_RETRY_COUNT"),
			RetryDelayMillis:      v.GetInt("HTTP_RETRY_DELAY_MS"),
			CircuitBreakerEnabled: v.GetBool("HTTP_CIRCUIT_BREAKER_ENABLED"),
		},
		Cache: CacheConfig{
			ReferenceTTLSeconds: v.GetInt("REFERENCE_CACHE_TTL_SECONDS"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint: v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:      v.GetString("O11Y_SERVICE_NAME"),
			ServiceVersion:   v.GetString("O11Y_SERVICE_VERSION"),
		},
		StubServer: StubServerConfig{
			Port:           v.GetString("STUB_SERVER_PORT"),
			AllowedOrigins: splitList(v.GetString("STUB_SERVER_ALLOWED_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("invalid configuration: %s failed %q validation", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// HTTPTimeout returns the per-request timeout
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// RetryDelay returns the fixed delay between retries
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.HTTP.RetryDelayMillis) * time.Millisecond
}

// ReferenceCacheTTL returns how long reference data is cached
func (c *Config) ReferenceCacheTTL() time.Duration {
	return time.Duration(c.Cache.ReferenceTTLSeconds) * time.Second
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// splitList parses a comma-separated list
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
