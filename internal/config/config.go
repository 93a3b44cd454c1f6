package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".researchai"
	envPrefix  = "RAI"

	ResolverHTTP      = "http"
	ResolverHeuristic = "heuristic"

	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	Service   ServiceConfig
	Chat      ChatConfig
	Session   SessionConfig
	Summaries SummariesConfig
	Log       LogConfig
}

type ServiceConfig struct {
	BaseURL        string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

type ChatConfig struct {
	Resolver        string        `validate:"oneof=http heuristic"`
	ResolverTimeout time.Duration `validate:"gt=0"`
}

type SessionConfig struct {
	Backend     string `validate:"oneof=file redis"`
	Dir         string `validate:"required"`
	Fingerprint string
	TTL         time.Duration `validate:"gt=0"`
	RedisAddr   string        `validate:"required_if=Backend redis"`
}

type SummariesConfig struct {
	Path string `validate:"required"`
}

type LogConfig struct {
	File  string
	Level string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads ~/.researchai/config.toml (optional) and RAI_* environment
// overrides into cfg, then decodes and validates the result.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(root)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg, root)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		Service: ServiceConfig{
			BaseURL:        strings.TrimSpace(cfg.GetString("service.base_url")),
			RequestTimeout: cfg.GetDuration("service.request_timeout"),
		},
		Chat: ChatConfig{
			Resolver:        strings.ToLower(strings.TrimSpace(cfg.GetString("chat.resolver"))),
			ResolverTimeout: cfg.GetDuration("chat.resolver_timeout"),
		},
		Session: SessionConfig{
			Backend:     strings.ToLower(strings.TrimSpace(cfg.GetString("session.backend"))),
			Dir:         cfg.GetString("session.dir"),
			Fingerprint: strings.TrimSpace(cfg.GetString("session.fingerprint")),
			TTL:         cfg.GetDuration("session.ttl"),
			RedisAddr:   strings.TrimSpace(cfg.GetString("session.redis_addr")),
		},
		Summaries: SummariesConfig{
			Path: cfg.GetString("summaries.path"),
		},
		Log: LogConfig{
			File:  cfg.GetString("log.file"),
			Level: cfg.GetString("log.level"),
		},
	}

	if err := validate.Struct(loaded); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper, root string) {
	cfg.SetDefault("service.base_url", "http://127.0.0.1:8000")
	cfg.SetDefault("service.request_timeout", 2*time.Minute)
	cfg.SetDefault("chat.resolver", ResolverHTTP)
	cfg.SetDefault("chat.resolver_timeout", 60*time.Second)
	cfg.SetDefault("session.backend", BackendFile)
	cfg.SetDefault("session.dir", filepath.Join(root, "sessions"))
	cfg.SetDefault("session.fingerprint", "")
	cfg.SetDefault("session.ttl", 12*time.Hour)
	cfg.SetDefault("session.redis_addr", "")
	cfg.SetDefault("summaries.path", filepath.Join(root, "summaries.toml"))
	cfg.SetDefault("log.file", filepath.Join(root, "rai.log"))
	cfg.SetDefault("log.level", "info")
}
