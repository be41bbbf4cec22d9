package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	AMQP     AMQPConfig
	Policy   PolicyConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	LogFile string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// Enabled reports whether the order journal should be written to Postgres.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// PolicyConfig holds the operator limits for hall size and order size.
type PolicyConfig struct {
	MaxRows          int
	MaxColumns       int
	MaxSeatsPerOrder int
}

// LoadConfig reads the given .env file when it exists, then lets environment
// variables override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "cinema-ticketing")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_FILE", "cinema-ticketing.log")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("AMQP_EXCHANGE", "cinema.events")
	v.SetDefault("MAX_ROWS", 15)
	v.SetDefault("MAX_COLUMNS", 30)
	v.SetDefault("MAX_SEATS_PER_ORDER", 5)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
			LogFile: v.GetString("LOG_FILE"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		AMQP: AMQPConfig{
			URL:      v.GetString("AMQP_URL"),
			Exchange: v.GetString("AMQP_EXCHANGE"),
		},
		Policy: PolicyConfig{
			MaxRows:          v.GetInt("MAX_ROWS"),
			MaxColumns:       v.GetInt("MAX_COLUMNS"),
			MaxSeatsPerOrder: v.GetInt("MAX_SEATS_PER_ORDER"),
		},
	}

	return config, nil
}
