package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"hotel"`
		Timezone string `envconfig:"TIMEZONE"`
	} `envconfig:"APP"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"1"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			MigrationPath  string `envconfig:"MIGRATION_PATH"  default:"file://migrations/postgres"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Host           string `envconfig:"HOST"            default:"localhost"`
			Port           string `envconfig:"PORT"            default:"5432"`
			Username       string `envconfig:"USER"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME"`
			SSLMode        string `envconfig:"SSL_MODE"        default:"disable"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Client configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// ApplyArgs overrides the database coordinates with the positional
// <dbname> <port> <user> arguments of the console client.
func (c *Config) ApplyArgs(dbName, port, user string) {
	if dbName != "" {
		c.DB.Postgres.Name = dbName
	}

	if port != "" {
		c.DB.Postgres.Port = port
	}

	if user != "" {
		c.DB.Postgres.Username = user
	}
}
