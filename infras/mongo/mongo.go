package mongo

import (
	"context"
	"fmt"
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// New connects to the document store holding booking history.
// The returned cleanup disconnects the client.
func New(config *config.Config) (*mongo.Database, func(), error) {
	timeout := time.Duration(config.DB.Mongo.ConnectTimeoutSeconds) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.DB.Mongo.URI).
		SetAppName(config.App.Name).
		SetConnectTimeout(timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Info().Str("database", config.DB.Mongo.Database).Msg("Connected to MongoDB")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")

			return
		}

		log.Info().Msg("MongoDB client disconnected")
	}

	return client.Database(config.DB.Mongo.Database), cleanup, nil
}
