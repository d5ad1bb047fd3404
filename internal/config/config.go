package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"PORT"`
	DatabaseDSN     string        `mapstructure:"DB_DSN"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	AppName         string        `mapstructure:"APP_NAME"`
	ReadTimeout     time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `mapstructure:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"PORT",
	"DB_DSN",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"APP_NAME",
	"READ_TIMEOUT",
	"WRITE_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
}

// Load lee la configuración desde env y, si path no está vacío, desde ese
// archivo (yaml, json, .env…). Las variables de entorno tienen prioridad.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "clinicals")
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	n, err := strconv.Atoi(c.Port)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	c.DatabaseDSN = strings.TrimSpace(c.DatabaseDSN)
	return nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// UsesPostgres indica si hay que abrir Postgres en vez del store en memoria.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseDSN != ""
}
