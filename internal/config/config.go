package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения с путём к конфигу
const EnvConfigPath = "CONSOLE_CONFIG"

// Драйверы хранилища клиентского состояния
const (
	StorageBolt     = "bolt"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Политика редиректа при несовпадении роли
const (
	DenyRedirectLogin = "login"
	DenyRedirectHome  = "home"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация консоли
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Backend BackendConfig `toml:"backend"`
	Storage StorageConfig `toml:"storage"`
	Gate    GateConfig    `toml:"gate"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // seconds
	WriteTimeout    int `toml:"write_timeout"` // seconds
	IdleTimeout     int `toml:"idle_timeout"`  // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig внешний REST API
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

type StorageConfig struct {
	Driver   string         `toml:"driver"`
	BoltPath string         `toml:"bolt_path"`
	Postgres PostgresConfig `toml:"postgres"`
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// GateConfig поведение шлюза сессии
type GateConfig struct {
	DenyRedirect string `toml:"deny_redirect"`
}

// DSN строка подключения к PostgreSQL
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8090,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "smc_admin_console",
		},
		Backend: BackendConfig{
			URL:     "http://localhost:5000",
			Timeout: 10,
		},
		Storage: StorageConfig{
			Driver:   StorageBolt,
			BoltPath: "console-state.db",
			Postgres: PostgresConfig{
				Host:            "localhost",
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    5,
				MaxIdleConns:    2,
				ConnMaxLifetime: 300,
			},
		},
		Gate: GateConfig{
			DenyRedirect: DenyRedirectLogin,
		},
	}
}

// Load читает TOML-файл поверх значений по умолчанию.
// Путь из CONSOLE_CONFIG имеет приоритет над аргументом.
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}

	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageBolt:
		if c.Storage.BoltPath == "" {
			return fmt.Errorf("%w: storage.bolt_path is required for bolt driver", ErrInvalidConfig)
		}
	case StoragePostgres:
		if c.Storage.Postgres.DBName == "" {
			return fmt.Errorf("%w: storage.postgres.dbname is required for postgres driver", ErrInvalidConfig)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Gate.DenyRedirect {
	case DenyRedirectLogin, DenyRedirectHome:
	default:
		return fmt.Errorf("%w: gate.deny_redirect must be %q or %q",
			ErrInvalidConfig, DenyRedirectLogin, DenyRedirectHome)
	}

	return nil
}
