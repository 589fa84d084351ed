package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
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

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limiting
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	VoiceRateLimitAllowedPerMin int `toml:"voice_rate_limit_allowed_per_min"`

	// assistant: "gemini" or "openai"
	AssistantProvider string `toml:"assistant_provider"`
	GeminiModel       string `toml:"gemini_model"`

	// dynamodb backed stores
	AWSRegion          string `toml:"aws_region"`
	ActivitiesTable    string `toml:"activities_table"`
	ExercisesTable     string `toml:"exercises_table"`
	WorkoutVideosTable string `toml:"workout_videos_table"`

	// progress photos disk storage
	PhotosRootPath string `toml:"photos_root_path"`

	// motivational tips
	TipsCsvPath string `toml:"tips_csv_path"`
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
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s missing", env)
	}

	cfg.Environment = env

	if cfg.AssistantProvider == "" {
		cfg.AssistantProvider = "gemini"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-pro"
	}
	if cfg.LoginRateLimitAllowedPerMin <= 0 {
		cfg.LoginRateLimitAllowedPerMin = 15
	}
	if cfg.VoiceRateLimitAllowedPerMin <= 0 {
		cfg.VoiceRateLimitAllowedPerMin = 30
	}

	return cfg, nil
}
