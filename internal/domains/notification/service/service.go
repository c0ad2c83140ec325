package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/notification/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Notifier hands guest emails to the mailer through Kafka.
type Notifier interface {
	// Publish is best-effort: a failure is logged and never reaches the caller.
	Publish(ctx context.Context, notification model.BookingNotification)
	// Consume blocks until ctx is done, passing every notification to deliver.
	Consume(ctx context.Context, deliver func(ctx context.Context, notification model.BookingNotification) error) error
}

type serviceImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Publish(ctx context.Context, notification model.BookingNotification) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	if notification.CreatedAt == constant.Empty {
		notification.CreatedAt = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	err := s.client.SendMessages(ctx, s.cfg.Kafka.Topics.BookingNotification, kafka.Message{
		Key:   notification.BookingID,
		Value: notification,
	})
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).
			Str("booking_id", notification.BookingID).
			Str("type", string(notification.Type)).
			Msg("failed to publish booking notification")

		return
	}

	log.Info().Str("booking_id", notification.BookingID).Str("type", string(notification.Type)).Msg("booking notification published")
}

func (s *serviceImpl) Consume(ctx context.Context, deliver func(ctx context.Context, notification model.BookingNotification) error) error {
	err := s.client.Consume(ctx, constant.Empty, s.cfg.Kafka.Topics.BookingNotification, func(ctx context.Context, message kafkaGo.Message) error {
		notification, err := kafka.DecodeKafkaMessage[model.BookingNotification](message)
		if err != nil {
			return err
		}

		return deliver(ctx, notification)
	})
	if err != nil {
		return fmt.Errorf("failed to consume booking notifications: %w", err)
	}

	return nil
}
