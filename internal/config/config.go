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

const (
	DriverDynamoDB  = "dynamodb"
	DriverMongoDB   = "mongodb"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
	Pricing PricingConfig `toml:"pricing"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	Port            int           `toml:"port"`
	Env             string        `toml:"env"`
	ServiceName     string        `toml:"service_name"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver             string `toml:"driver"`
	DynamoTablePrefix  string `toml:"dynamodb_table_prefix"`
	MongoURI           string `toml:"mongodb_uri"`
	MongoDatabase      string `toml:"mongodb_database"`
	MongoUser          string `toml:"mongodb_user"`
	MongoPassword      string `toml:"mongodb_password"`
	FirestoreProjectID string `toml:"firestore_project_id"`
}

type PricingConfig struct {
	Currency string `toml:"currency"`
}

type LogsConfig struct {
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the configuration used when neither a file nor the
// environment sets a value.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			Env:             "development",
			ServiceName:     "turnover-api",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver:        DriverDynamoDB,
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "turnover",
		},
		Pricing: PricingConfig{Currency: "AUD"},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Load reads defaults, then the TOML file at path when it exists, then
// environment variables. Later sources win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverDynamoDB, DriverMongoDB, DriverFirestore, DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.Pricing.Currency) == "" {
		return errors.New("currency must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Metrics.Enabled {
		if err := validateMetricsPath(c.Metrics.Path); err != nil {
			return err
		}
	}
	return nil
}

// reservedSegments are first path segments already served by the API router.
var reservedSegments = map[string]bool{
	"api":     true,
	"health":  true,
	"jobs":    true,
	"linen":   true,
	"quotes":  true,
	"swagger": true,
}

func validateMetricsPath(path string) error {
	if !strings.HasPrefix(path, "/") || strings.ContainsAny(path, ":* ") {
		return fmt.Errorf("invalid metrics path %q", path)
	}
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if first == "" || reservedSegments[first] {
		return fmt.Errorf("metrics path %q collides with an API route", path)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

func applyEnv(c *Config) error {
	setString("APP_ENV", &c.Server.Env)
	setString("SERVICE_NAME", &c.Server.ServiceName)
	setString("CURRENCY", &c.Pricing.Currency)
	setString("STORE_DRIVER", &c.Store.Driver)
	setString("DYNAMODB_TABLE_PREFIX", &c.Store.DynamoTablePrefix)
	setString("MONGODB_URI", &c.Store.MongoURI)
	setString("MONGODB_DATABASE", &c.Store.MongoDatabase)
	setString("MONGODB_USER", &c.Store.MongoUser)
	setString("MONGODB_PASSWORD", &c.Store.MongoPassword)
	setString("FIRESTORE_PROJECT_ID", &c.Store.FirestoreProjectID)
	setString("LOG_LEVEL", &c.Logs.Level)
	setString("METRICS_PATH", &c.Metrics.Path)
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED %q: %w", v, err)
		}
		c.Metrics.Enabled = enabled
	}
	for key, dst := range map[string]*time.Duration{
		"READ_TIMEOUT":     &c.Server.ReadTimeout,
		"WRITE_TIMEOUT":    &c.Server.WriteTimeout,
		"SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
	} {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", key, v, err)
			}
			*dst = d
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func setString(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}
