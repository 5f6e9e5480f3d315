// Package config loads rsdb settings from config files, .env files and the environment.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/satishbabariya/rsdatabase/internal/adapters/database"
)

// AppFs is the filesystem config and .env files are read from.
var AppFs = afero.NewOsFs()

const (
	configName = ".rsdb"
	envPrefix  = "RSDB"
)

// Config holds the application configuration
type Config struct {
	Provider       string
	DatabaseURL    string
	LogLevel       string
	LogFormat      string
	ConnectTimeout int
	MaxIdleTime    int
}

// Database returns the adapter configuration.
func (c *Config) Database() database.Config {
	return database.Config{
		Provider:       c.Provider,
		URL:            c.DatabaseURL,
		MaxIdleTime:    c.MaxIdleTime,
		ConnectTimeout: c.ConnectTimeout,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetFs(AppFs)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("provider", "sqlite")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("connect_timeout", 10)
	v.SetDefault("max_idle_time", 0)
	return v
}

// LoadConfig loads configuration from various sources. When configFile is
// empty the usual locations are searched and a missing file is not an error.
func LoadConfig(configFile string) (*Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "rsdb"))

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if err := loadEnvFile(".env", false); err != nil {
		return nil, err
	}
	// .env.local wins over .env
	if err := loadEnvFile(".env.local", true); err != nil {
		return nil, err
	}

	cfg := &Config{
		Provider:       v.GetString("provider"),
		DatabaseURL:    v.GetString("database_url"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		ConnectTimeout: v.GetInt("connect_timeout"),
		MaxIdleTime:    v.GetInt("max_idle_time"),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

// loadEnvFile applies the variables of a dotenv file if it exists. Existing
// variables are kept unless override is set.
func loadEnvFile(path string, override bool) error {
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for k, val := range vars {
		if _, exists := os.LookupEnv(k); exists && !override {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return err
		}
	}
	return nil
}

// SaveConfig saves configuration to $HOME/.config/rsdb/.rsdb.yaml and returns
// the path written.
func SaveConfig(cfg *Config) (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(home, ".config", "rsdb", configName+".yaml")
	return path, SaveConfigAs(cfg, path)
}

// SaveConfigAs saves configuration to path.
func SaveConfigAs(cfg *Config, path string) error {
	v := newViper()
	v.Set("provider", cfg.Provider)
	v.Set("database_url", cfg.DatabaseURL)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_format", cfg.LogFormat)
	v.Set("connect_timeout", cfg.ConnectTimeout)
	v.Set("max_idle_time", cfg.MaxIdleTime)

	if err := AppFs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}
