package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything the server needs at startup. It is built once
// in main and passed down explicitly; no package holds it as a global.
type Config struct {
	Server struct {
		Port        int
		CORSOrigins []string
	}
	Database struct {
		Host         string
		Port         string
		User         string
		Password     string
		Name         string
		SSLMode      string
		MaxIdleConns int
		MaxOpenConns int
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
	Log struct {
		Level string
	}
	Catalog struct {
		DefaultLanguage string
	}
}

// Load reads config.yml when present, falling back to environment
// variables (dots become underscores, e.g. DATABASE_HOST). A local .env
// file is honored before the environment is read.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.max_open_conns", 20)
	viper.SetDefault("auth.token_ttl_hours", 24)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("catalog.default_language", "es")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.CORSOrigins = viper.GetStringSlice("server.cors_origins")
	cfg.Database.Host = viper.GetString("database.host")
	cfg.Database.Port = viper.GetString("database.port")
	cfg.Database.User = viper.GetString("database.user")
	cfg.Database.Password = viper.GetString("database.password")
	cfg.Database.Name = viper.GetString("database.name")
	cfg.Database.SSLMode = viper.GetString("database.sslmode")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = time.Duration(viper.GetInt("auth.token_ttl_hours")) * time.Hour
	cfg.Log.Level = viper.GetString("log.level")
	cfg.Catalog.DefaultLanguage = viper.GetString("catalog.default_language")

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required (env AUTH_JWT_SECRET)")
	}

	return &cfg, nil
}
