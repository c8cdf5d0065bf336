package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Narrative NarrativeConfig `mapstructure:"narrative"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig controls the intake session store.
type SessionConfig struct {
	TTLMinutes int    `mapstructure:"ttl_minutes"`
	Backend    string `mapstructure:"backend"` // "redis" or "memory"
}

// PipelineConfig holds limits applied before any stage runs.
type PipelineConfig struct {
	MaxTextLength int `mapstructure:"max_text_length"` // runes
}

// CatalogConfig selects where the citation catalog is loaded from.
type CatalogConfig struct {
	Source string `mapstructure:"source"` // "builtin", "file" or "postgres"
	Path   string `mapstructure:"path"`   // catalog file, for the file source
}

// NarrativeConfig controls the optional external-model rewriting step.
type NarrativeConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Provider  string `mapstructure:"provider"` // "googleai" or "openai"
	Model     string `mapstructure:"model"`
	APIKey    string `mapstructure:"api_key"`
	TimeoutMS int    `mapstructure:"timeout_ms"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if cfg.Session.Backend != "redis" && cfg.Session.Backend != "memory" {
		return fmt.Errorf("session.backend must be redis or memory, got %q", cfg.Session.Backend)
	}
	if cfg.Session.Backend == "redis" && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address required for redis session backend")
	}
	switch cfg.Catalog.Source {
	case "builtin", "postgres":
	case "file":
		if cfg.Catalog.Path == "" {
			return fmt.Errorf("catalog.path required for file catalog source")
		}
	default:
		return fmt.Errorf("catalog.source must be builtin, file or postgres, got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.Source == "postgres" && cfg.Database.Postgres.Host == "" {
		return fmt.Errorf("database.postgres.host required for postgres catalog source")
	}
	if cfg.Narrative.Enabled && cfg.Narrative.Model == "" {
		return fmt.Errorf("narrative.model required when narrative.enabled")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "clinical-guidance-pipeline"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = 30
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "memory"
	}
	if cfg.Pipeline.MaxTextLength == 0 {
		cfg.Pipeline.MaxTextLength = 4000
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "builtin"
	}
	if cfg.Narrative.TimeoutMS == 0 {
		cfg.Narrative.TimeoutMS = 8000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
}
