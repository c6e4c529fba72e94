package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	GapPolicyUnifiedWindow = "unified_window"
	GapPolicyPerCategory   = "per_category"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// fitbit sync
	FitbitRedirectURI string `toml:"fitbit_redirect_uri"`
	FitbitScopes      string `toml:"fitbit_scopes"`
	SyncWindowDays    int    `toml:"sync_window_days"`
	DailySyncLimit    int    `toml:"daily_sync_limit"`
	// training gap policy
	GapPolicy                string `toml:"gap_policy"`
	GapWindowHours           int    `toml:"gap_window_hours"`
	GapStrengthThresholdDays int    `toml:"gap_strength_threshold_days"`
	GapCardioThresholdDays   int    `toml:"gap_cardio_threshold_days"`
	// reminder message generation
	OpenAIModel          string `toml:"openai_model"`
	MessageTimeoutSecs   int    `toml:"message_timeout_secs"`
	MessageMaxCharacters int    `toml:"message_max_characters"`
	// rate limiting
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s empty", env)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.GapPolicy == "" {
		c.GapPolicy = GapPolicyUnifiedWindow
	}
	if c.GapWindowHours == 0 {
		c.GapWindowHours = 48
	}
	if c.GapStrengthThresholdDays == 0 {
		c.GapStrengthThresholdDays = 3
	}
	if c.GapCardioThresholdDays == 0 {
		c.GapCardioThresholdDays = 2
	}
	if c.SyncWindowDays == 0 {
		c.SyncWindowDays = 30
	}
	if c.DailySyncLimit == 0 {
		c.DailySyncLimit = 5
	}
	if c.MessageTimeoutSecs == 0 {
		c.MessageTimeoutSecs = 10
	}
	if c.MessageMaxCharacters == 0 {
		c.MessageMaxCharacters = 240
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
}

func (c *Config) Validate() error {
	switch c.GapPolicy {
	case GapPolicyUnifiedWindow, GapPolicyPerCategory:
	default:
		return fmt.Errorf("unknown gap policy: %s", c.GapPolicy)
	}
	if c.FitbitRedirectURI == "" {
		return fmt.Errorf("fitbit redirect URI not set")
	}
	return nil
}
