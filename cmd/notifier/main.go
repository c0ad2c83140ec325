package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/internal/domains/notification/model"
	"hotel/shared/logger"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

// The notifier drains the booking notification topic. Rendering and sending
// the email belongs to the mailer; this process records what it would send.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	timezone.Use(cfg.App.Timezone)

	notifier, cleanup, err := di.InitializeNotifier()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize notifier")
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("topic", cfg.Kafka.Topics.BookingNotification).Msg("Consuming booking notifications")

	err = notifier.Consume(ctx, func(_ context.Context, notification model.BookingNotification) error {
		log.Info().
			Str("type", string(notification.Type)).
			Str("reference", notification.Reference).
			Str("guest_email", notification.GuestEmail).
			Msg("booking notification received")

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Notifier stopped")
	}
}
