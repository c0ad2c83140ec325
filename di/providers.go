package di

import (
	"context"
	"time"

	"hotel/infras/otel"
	activityRepository "hotel/internal/domains/activity/repository"
	roomService "hotel/internal/domains/room/service"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

const indexTimeout = 10 * time.Second

// provideActivityRepository builds the history store and makes sure its
// lookup index exists. A failed index build is logged, not fatal.
func provideActivityRepository(db *mongo.Database, otel otel.Otel) activityRepository.Activity {
	repo := activityRepository.New(db, otel)

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure booking history indexes")
	}

	return repo
}

func provideAllocator(room roomService.Room) roomService.Allocator {
	return room
}
