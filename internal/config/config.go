package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Payments *PaymentsConfig `mapstructure:"payments"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

type PaymentsConfig struct {
	StripeSecretKey       string `mapstructure:"stripe_secret_key"`
	EnableMock            bool   `mapstructure:"enable_mock"`
	Currency              string `mapstructure:"currency"`
	ReservationTTLMinutes int    `mapstructure:"reservation_ttl_minutes"`
}

// StripeConfigured reports whether a usable Stripe secret key is
// present. Keys not carrying the sk_ prefix are treated as
// unconfigured, matching how the storefront always behaved.
func (c *PaymentsConfig) StripeConfigured() bool {
	return strings.HasPrefix(c.StripeSecretKey, "sk_")
}

func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	config := &AppConfig{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	loadEnvOverrides(config)

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return config, nil
}

func loadEnvOverrides(config *AppConfig) {
	if port := os.Getenv("PORT"); port != "" {
		config.API.Port = port
	}
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		config.Payments.StripeSecretKey = key
	}
	if mock := os.Getenv("ENABLE_MOCK_PAYMENTS"); mock != "" {
		config.Payments.EnableMock = mock == "true"
	}
}
