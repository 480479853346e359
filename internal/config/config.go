package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPAddr       string   `yaml:"http_addr"`
	Storage        string   `yaml:"storage"`
	Postgres       Postgres `yaml:"postgres"`
	IndexLimit     int      `yaml:"index_limit"`
	AdminJWTSecret string   `yaml:"admin_jwt_secret"`
	LogLevel       string   `yaml:"log_level"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DB       string `yaml:"db"`
	SSLMode  string `yaml:"sslmode"`
}

func Default() *Config {
	return &Config{
		HTTPAddr: "0.0.0.0:8080",
		Storage:  StoragePostgres,
		Postgres: Postgres{
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		LogLevel: "info",
	}
}

// LoadDotEnv reads a .env file into the process environment if one exists.
// It reports whether a file was loaded.
func LoadDotEnv(filenames ...string) (bool, error) {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load .env: %w", err)
	}
	return true, nil
}

// Load builds the configuration from defaults, the YAML file named by
// POLLS_CONFIG (if any) and finally environment variables.
func Load() (*Config, error) {
	return FromFile(os.Getenv("POLLS_CONFIG"))
}

func FromFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.HTTPAddr, "HTTP_ADDR")
	setString(&c.Storage, "POLLS_STORAGE")
	setString(&c.Postgres.Host, "POSTGRES_HOST")
	setString(&c.Postgres.Port, "POSTGRES_PORT")
	setString(&c.Postgres.User, "POSTGRES_USER")
	setString(&c.Postgres.Password, "POSTGRES_PASSWORD")
	setString(&c.Postgres.DB, "POSTGRES_DB")
	setString(&c.Postgres.SSLMode, "POSTGRES_SSLMODE")
	setString(&c.AdminJWTSecret, "ADMIN_JWT_SECRET")
	setString(&c.LogLevel, "LOG_LEVEL")

	if raw := strings.TrimSpace(os.Getenv("POLLS_INDEX_LIMIT")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid POLLS_INDEX_LIMIT: %w", err)
		}
		c.IndexLimit = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.Host == "" {
			return errors.New("postgres host is required")
		}
		if c.Postgres.DB == "" {
			return errors.New("postgres database name is required")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.IndexLimit < 0 {
		return errors.New("index limit must not be negative")
	}
	return nil
}

// DSN is the lib/pq connection string.
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.DB,
		RawQuery: "sslmode=" + p.SSLMode,
	}
	return u.String()
}

func NewLogger(level string, w io.Writer) *slog.Logger {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
