package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Alice    AliceConfig
	TickTick TickTickConfig
	NLP      NLPConfig
	Cache    CacheConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AliceConfig struct {
	// SkillID is informational; account linking is configured in the
	// Yandex Dialogs console, not here.
	SkillID string
}

type TickTickConfig struct {
	BaseURL string
	Timeout time.Duration

	// OAuth client credentials, used by the account-linking helper
	// script; the service itself receives per-user tokens from Alice.
	ClientID     string
	ClientSecret string
}

type NLPConfig struct {
	// Timezone is the fallback when a request carries no usable one.
	Timezone string
}

type CacheConfig struct {
	TTL time.Duration
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Alice.SkillID = viper.GetString("alice.skill_id")

	cfg.TickTick.BaseURL = viper.GetString("ticktick.base_url")
	cfg.TickTick.Timeout = viper.GetDuration("ticktick.timeout")
	cfg.TickTick.ClientID = viper.GetString("ticktick.client_id")
	cfg.TickTick.ClientSecret = viper.GetString("ticktick.client_secret")
	if clientID := viper.GetString("ticktick_client_id"); clientID != "" {
		cfg.TickTick.ClientID = clientID
	}
	if clientSecret := viper.GetString("ticktick_client_secret"); clientSecret != "" {
		cfg.TickTick.ClientSecret = clientSecret
	}

	cfg.NLP.Timezone = viper.GetString("nlp.timezone")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("ticktick.base_url", "")
	viper.SetDefault("ticktick.timeout", "10s")
	viper.SetDefault("nlp.timezone", "Europe/Moscow")
	viper.SetDefault("cache.ttl", "30s")
	viper.SetDefault("webhook.rate_limit_per_min", 300)
}
