package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	// The console is strictly request/response, so one session is all it ever uses.
	postgresMaxIdleConnection = 1
	postgresMaxOpenConnection = 1
)

var errNoRetry = errors.New("no connection attempt was made")

// Connection is the single database session shared by every repository.
type Connection struct {
	DB        *sqlx.DB
	closeOnce sync.Once
}

// New connects using the configured coordinates and terminates the process
// when the database cannot be reached.
func New(config *config.Config) *Connection {
	db, err := CreatePostgresConnection(
		config.DB.Postgres.Username,
		config.DB.Postgres.Password,
		config.DB.Postgres.Host,
		config.DB.Postgres.Port,
		config.DB.Postgres.Name,
		config.DB.Postgres.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to connect to database, make sure postgres is running")
	}

	return NewFromDB(db)
}

// NewFromDB wraps an already opened handle.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{DB: db}
}

// DSN builds the postgres:// descriptor for the given coordinates.
func DSN(username, password, host, port, dbName, sslMode string) string {
	descriptor := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(username, password),
		Host:   net.JoinHostPort(host, port),
		Path:   dbName,
	}

	query := url.Values{}
	if sslMode != "" {
		query.Set("sslmode", sslMode)
	}

	descriptor.RawQuery = query.Encode()

	return descriptor.String()
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) (*sqlx.DB, error) {
	descriptor := DSN(username, password, host, port, dbName, sslMode)

	log.Debug().Str("host", host).Str("port", port).Str("dbName", dbName).Msg("Connecting to database")

	lastErr := errNoRetry

	for retry := 0; retry < max(maxRetry, 1); retry++ {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to %s/%s: %w", net.JoinHostPort(host, port), dbName, lastErr)
}

// Close releases the session. Safe to call more than once; errors are logged only.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		if c.DB == nil {
			return
		}

		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database connection")

			return
		}

		log.Info().Msg("Disconnected from database")
	})
}
