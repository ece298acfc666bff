package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Estimates string
	Stock     string
	Mechanics string
}

type AnalyticsConfig struct {
	TopN   int
	Months int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	AWS         AWSConfig
	Tables      TablesConfig
	Analytics   AnalyticsConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TablesConfig{
			Estimates: v.GetString("ESTIMATES_TABLE"),
			Stock:     v.GetString("STOCK_TABLE"),
			Mechanics: v.GetString("MECHANICS_TABLE"),
		},
		Analytics: AnalyticsConfig{
			TopN:   v.GetInt("ANALYTICS_TOP_N"),
			Months: v.GetInt("ANALYTICS_MONTHS"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if cfg.AWS.AccessKeyID == "" {
		cfg.AWS.AccessKeyID = "local"
	}
	if cfg.AWS.SecretAccessKey == "" {
		cfg.AWS.SecretAccessKey = "local"
	}
	if cfg.Tables.Estimates == "" {
		cfg.Tables.Estimates = "estimates"
	}
	if cfg.Tables.Stock == "" {
		cfg.Tables.Stock = "stock_items"
	}
	if cfg.Tables.Mechanics == "" {
		cfg.Tables.Mechanics = "mechanics"
	}
	if cfg.Analytics.TopN == 0 {
		cfg.Analytics.TopN = 5
	}
	if cfg.Analytics.Months == 0 {
		cfg.Analytics.Months = 12
	}
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", cfg.HTTP.Port)
	}
	if cfg.Analytics.TopN < 0 {
		return fmt.Errorf("ANALYTICS_TOP_N must be positive")
	}
	if cfg.Analytics.Months < 0 {
		return fmt.Errorf("ANALYTICS_MONTHS must be positive")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
