package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	Driver string // "file" or "postgres"
	File   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	Driver     string // "memory" or "redis"
	TTLMinutes int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"

	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

// LoadConfigFrom reads envFile, when present, and the process environment.
// Environment variables win over the file. An empty envFile skips the file.
func LoadConfigFrom(envFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "movie-reviews")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("STORE_DRIVER", StoreDriverFile)
	v.SetDefault("STORE_FILE", "movie_reviews.xlsx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SESSION_DRIVER", SessionDriverMemory)
	v.SetDefault("SESSION_TTL_MINUTES", 120)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Driver: v.GetString("STORE_DRIVER"),
			File:   v.GetString("STORE_FILE"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			Driver:     v.GetString("SESSION_DRIVER"),
			TTLMinutes: v.GetInt("SESSION_TTL_MINUTES"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverFile:
		if c.Store.File == "" {
			return errors.New("STORE_FILE is required for the file store")
		}
	case StoreDriverPostgres:
		if c.Database.Name == "" {
			return errors.New("DB_NAME is required for the postgres store")
		}
	default:
		return errors.New("STORE_DRIVER must be one of: file, postgres")
	}

	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverRedis:
	default:
		return errors.New("SESSION_DRIVER must be one of: memory, redis")
	}

	if c.Session.TTLMinutes <= 0 {
		return errors.New("SESSION_TTL_MINUTES must be positive")
	}

	return nil
}
