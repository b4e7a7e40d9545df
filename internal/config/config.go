package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultSessionSecret = "dev-secret-key-change-in-production"

type Server struct {
	Port string `mapstructure:"port"`
}

type Webhook struct {
	URL       string `mapstructure:"url"`
	TimeoutMs int    `mapstructure:"timeout-ms"`
}

type Security struct {
	SessionSecret string `mapstructure:"session-secret"`
}

type Metrics struct {
	URL          string `mapstructure:"url"`
	IntervalMs   int    `mapstructure:"interval-ms"`
	CommonLabels string `mapstructure:"common-labels"`
}

type Logs struct {
	URL string `mapstructure:"url"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Webhook  Webhook  `mapstructure:"webhook"`
	Security Security `mapstructure:"security"`
	Metrics  Metrics  `mapstructure:"metrics"`
	Logs     Logs     `mapstructure:"logs"`
}

// Load reads configuration from environment variables, after a best-effort
// .env load for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", "5000")
	v.SetDefault("webhook.url", "")
	v.SetDefault("webhook.timeout-ms", 10_000)
	v.SetDefault("security.session-secret", DefaultSessionSecret)
	v.SetDefault("metrics.url", "")
	v.SetDefault("metrics.interval-ms", 10_000)
	v.SetDefault("metrics.common-labels", "")
	v.SetDefault("logs.url", "")

	bindings := map[string]string{
		"server.port":             "PORT",
		"webhook.url":             "DISCORD_WEBHOOK_URL",
		"webhook.timeout-ms":      "WEBHOOK_TIMEOUT_MS",
		"security.session-secret": "SESSION_SECRET",
		"metrics.url":             "METRICS_PUSH_URL",
		"metrics.interval-ms":     "METRICS_PUSH_INTERVAL_MS",
		"metrics.common-labels":   "METRICS_COMMON_LABELS",
		"logs.url":                "LOKI_URL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return config
}
