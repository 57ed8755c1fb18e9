package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Auth     AuthConfig     `toml:"auth"`
	Database DatabaseConfig `toml:"database"`
	Admin    AdminConfig    `toml:"admin"`
	CORS     CORSConfig     `toml:"cors"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type AuthConfig struct {
	SecretKey                string `toml:"secret_key"`
	Algorithm                string `toml:"algorithm"`
	AccessTokenExpireMinutes int    `toml:"access_token_expire_minutes"`
	BcryptCost               int    `toml:"bcrypt_cost"`
}

type DatabaseConfig struct {
	Driver       string `toml:"driver"`
	URL          string `toml:"url"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxOpenConns int    `toml:"max_open_conns"`
}

// AdminConfig is the account seeded at startup when no user owns Email.
type AdminConfig struct {
	Email    string `toml:"email"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Auth.SecretKey) == "" {
		errs = append(errs, errors.New("auth.secret_key must not be empty"))
	}
	if c.Auth.AccessTokenExpireMinutes <= 0 {
		errs = append(errs, errors.New("auth.access_token_expire_minutes must be positive"))
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	if strings.TrimSpace(c.Database.URL) == "" {
		errs = append(errs, errors.New("database.url must not be empty"))
	}
	return errors.Join(errs...)
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.Auth.AccessTokenExpireMinutes) * time.Minute
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "museum-api",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8000,
			GinMode: "debug",
		},
		Auth: AuthConfig{
			SecretKey:                "change-me-in-production",
			Algorithm:                "HS256",
			AccessTokenExpireMinutes: 30,
			BcryptCost:               10,
		},
		Database: DatabaseConfig{
			Driver:       DriverMySQL,
			URL:          "root:@tcp(127.0.0.1:3306)/museum?parseTime=true&loc=UTC&charset=utf8mb4",
			MaxIdleConns: 10,
			MaxOpenConns: 50,
		},
		Admin: AdminConfig{
			Email:    "admin@museu.com",
			Username: "admin",
			Password: "Admin@123",
			Name:     "Administrador do Museu",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:4200", "http://localhost:3000"},
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Auth.SecretKey = getEnv("SECRET_KEY", cfg.Auth.SecretKey)
	cfg.Auth.Algorithm = getEnv("ALGORITHM", cfg.Auth.Algorithm)
	cfg.Auth.AccessTokenExpireMinutes = getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", cfg.Auth.AccessTokenExpireMinutes)
	cfg.Auth.BcryptCost = getEnvAsInt("BCRYPT_COST", cfg.Auth.BcryptCost)

	cfg.Database.Driver = getEnv("DATABASE_DRIVER", cfg.Database.Driver)
	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.MaxIdleConns = getEnvAsInt("DATABASE_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	cfg.Database.MaxOpenConns = getEnvAsInt("DATABASE_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)

	cfg.Admin.Email = getEnv("ADMIN_EMAIL", cfg.Admin.Email)
	cfg.Admin.Username = getEnv("ADMIN_USERNAME", cfg.Admin.Username)
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", cfg.Admin.Password)
	cfg.Admin.Name = getEnv("ADMIN_NAME", cfg.Admin.Name)

	cfg.CORS.AllowedOrigins = getEnvAsList("BACKEND_CORS_ORIGINS", cfg.CORS.AllowedOrigins)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
