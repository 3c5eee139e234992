package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (s Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

func (m Metrics) Address() string {
	return fmt.Sprintf(":%d", m.Port)
}

type Database struct {
	Driver   string `mapstructure:"driver"` // sqlite3 or postgres
	Path     string `mapstructure:"path"`   // sqlite3 only
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`
	SeedFile string `mapstructure:"seedFile"`
}

func (d Database) ConnStr() string {
	if d.Driver == "sqlite3" {
		return d.Path
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode)
}

type LLM struct {
	Provider    string  `mapstructure:"provider"` // openai or ollama
	Model       string  `mapstructure:"model"`
	Token       string  `mapstructure:"token"`
	BaseURL     string  `mapstructure:"baseUrl"`
	ServerURL   string  `mapstructure:"serverUrl"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"maxTokens"`
}

type Auth struct {
	Secret   string `mapstructure:"secret"`
	TokenTTL int    `mapstructure:"tokenTtlHours"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Metrics  Metrics  `mapstructure:"metrics"`
	Database Database `mapstructure:"database"`
	LLM      LLM      `mapstructure:"llm"`
	Auth     Auth     `mapstructure:"auth"`
}

// Load reads the configuration file and applies environment overrides
// (dots replaced by underscores, e.g. LLM_TOKEN overrides llm.token).
func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.path", "brigade.db")
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.maxTokens", 2000)
	viper.SetDefault("auth.tokenTtlHours", 24)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret must be set")
	}

	return &cfg, nil
}
