package helper

import (
	"errors"
	"fmt"
	"net/url"

	"hotel/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // source
	"github.com/rs/zerolog/log"
)

// Direction names a migration action accepted by cmd/migrate.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

// ParseDirection validates a direction read from the command line.
func ParseDirection(raw string) (Direction, error) {
	switch d := Direction(raw); d {
	case DirectionUp, DirectionDown, DirectionStepUp, DirectionDrop:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, raw)
	}
}

// DatabaseName applies the optional environment prefix, e.g. "staging_hotel".
func DatabaseName(cfg *config.Config) string {
	return cfg.DB.Postgres.Prefix + cfg.DB.Postgres.Write.Name
}

// ConnectionURL builds the migrate DSN for the write database.
func ConnectionURL(cfg *config.Config) string {
	extra := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return cfg.DB.Postgres.Write.URL(DatabaseName(cfg), extra)
}

// Migrate runs one direction against the schema (users, room types, rooms, add-ons, bookings).
func Migrate(cfg *config.Config, direction Direction) error {
	mig, err := migrate.New(cfg.DB.Postgres.MigrationPath, ConnectionURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", direction, err)
	}

	version, dirty, verErr := mig.Version()
	if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
		log.Warn().Err(verErr).Msg("failed to read schema version")
	}

	log.Info().
		Str("direction", string(direction)).
		Str("database", DatabaseName(cfg)).
		Uint("version", version).
		Bool("dirty", dirty).
		Bool("changed", err == nil).
		Msg("Database migrations finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Migrate(cfg, DirectionUp)
}
