package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port      string `mapstructure:"port"`
			CertFile  string `mapstructure:"certFile"`
			KeyFile   string `mapstructure:"keyFile"`
			EnableTLS bool   `mapstructure:"enableTLS"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Repositories struct {
		Postgres struct {
			Host     string `mapstructure:"host"`
			Password string `mapstructure:"password"`
			Port     string `mapstructure:"port"`
			Username string `mapstructure:"username"`
			DB       string `mapstructure:"db"`
			SSLMODE  string `mapstructure:"SSLMODE"`
			// ping attempts before the audit log is disabled
			MAXCONWAITINGTIME int `mapstructure:"MAXCONWAITINGTIME"`
		} `mapstructure:"postgres"`
	} `mapstructure:"repositories"`
	Server struct {
		HTTPPort       string        `mapstructure:"HTTPPort"`
		Timeout        time.Duration `mapstructure:"HTTPTimeout"`
		AllowedOrigins []string      `mapstructure:"allowedOrigins"`
		CertFile       string        `mapstructure:"certFile"`
		KeyFile        string        `mapstructure:"keyFile"`
		EnableTLS      bool          `mapstructure:"enableTLS"`
	} `mapstructure:"server"`
	GenerativeAI struct {
		APIKeyEnv string `mapstructure:"apiKeyEnv"`
		Model     string `mapstructure:"model"`
		// nil leaves the model default in place
		Temperature *float32 `mapstructure:"temperature"`
	} `mapstructure:"generativeAI"`
	Events struct {
		TimeWindow string `mapstructure:"timeWindow"`
		BookingURL string `mapstructure:"bookingURL"`
	} `mapstructure:"events"`
	Sessions struct {
		TTL             time.Duration `mapstructure:"ttl"`
		CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
	} `mapstructure:"sessions"`
}

// PostgresEnabled reports whether the fetch audit log has somewhere to go.
func (c *Config) PostgresEnabled() bool {
	return c.Repositories.Postgres.Host != ""
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// SERVER_HTTPPORT=8081 overrides server.HTTPPort, etc.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&config)
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

func applyDefaults(c *Config) {
	if c.Server.HTTPPort == "" {
		c.Server.HTTPPort = "8000"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 60 * time.Second
	}
	if c.GenerativeAI.APIKeyEnv == "" {
		c.GenerativeAI.APIKeyEnv = "GOOGLE_GEMINI_API_KEY"
	}
	if c.GenerativeAI.Model == "" {
		c.GenerativeAI.Model = "gemini-3-flash-preview"
	}
	if c.Events.TimeWindow == "" {
		c.Events.TimeWindow = "January 2026"
	}
	if c.Events.BookingURL == "" {
		c.Events.BookingURL = "https://webook.com/en"
	}
	if c.Sessions.TTL == 0 {
		c.Sessions.TTL = 30 * time.Minute
	}
	if c.Sessions.CleanupInterval == 0 {
		c.Sessions.CleanupInterval = 10 * time.Minute
	}
}
