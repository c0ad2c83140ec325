package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

var errNoConnection = errors.New("could not connect to postgres")

// Connection splits reads from writes. Hand-written allocator statements go to
// Write so they see their own updates.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the write pool, then the read pool. The returned cleanup closes
// both.
func New(cfg *config.Config) (*Connection, func(), error) {
	pg := cfg.DB.Postgres

	write, err := Open("write", pg.Write, pg.Prefix+pg.Write.Name, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, nil, err
	}

	read, err := Open("read", pg.Read, pg.Prefix+pg.Read.Name, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, nil, err
	}

	conn := &Connection{Read: read, Write: write}

	cleanup := func() {
		for name, pool := range map[string]*sqlx.DB{"read": conn.Read, "write": conn.Write} {
			if err := pool.Close(); err != nil {
				log.Error().Err(err).Str("pool", name).Msg("failed to close postgres pool")
			}
		}

		log.Info().Msg("postgres pools closed")
	}

	return conn, cleanup, nil
}

// Open connects to one node, trying up to maxRetry times with waitSeconds
// between attempts.
func Open(name string, node config.PostgresNode, dbName string, maxRetry, waitSeconds int) (*sqlx.DB, error) {
	dsn := node.URL(dbName, nil)
	logger := log.With().Str("pool", name).Str("host", node.Host).Str("db", dbName).Logger()

	var lastErr error

	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Int("attempt", attempt).Msg("connected to postgres")

			return db, nil
		}

		lastErr = err

		logger.Warn().Err(err).Int("attempt", attempt).Msg("postgres not reachable, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s): %w", errNoConnection, name, lastErr)
}
