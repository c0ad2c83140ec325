package service_test

import (
	"context"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/service"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingNotification = "hotel.booking.notification"

	return cfg
}

func TestNotifier_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, newConfig(), mocks.NewOtel())

	notification := model.BookingNotification{
		Type:       model.TypeBookingConfirmed,
		BookingID:  "booking-1",
		Reference:  "BK-9FA0B1C2",
		GuestEmail: "ayu@example.com",
		RoomNumber: "101",
	}

	t.Run("keyed by booking id", func(t *testing.T) {
		mockClient.EXPECT().
			SendMessages(gomock.Any(), "hotel.booking.notification", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				require.Len(t, messages, 1)
				assert.Equal(t, "booking-1", messages[0].Key)

				sent, ok := messages[0].Value.(model.BookingNotification)
				require.True(t, ok)
				assert.Equal(t, model.TypeBookingConfirmed, sent.Type)
				assert.NotEmpty(t, sent.CreatedAt)

				return nil
			})

		svc.Publish(context.Background(), notification)
	})

	t.Run("broker failure is swallowed", func(t *testing.T) {
		mockClient.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable"))

		assert.NotPanics(t, func() {
			svc.Publish(context.Background(), notification)
		})
	})
}

func TestNotifier_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, newConfig(), mocks.NewOtel())

	t.Run("decodes and delivers", func(t *testing.T) {
		mockClient.EXPECT().
			Consume(gomock.Any(), "", "hotel.booking.notification", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, handler func(context.Context, kafkaGo.Message) error) error {
				assert.NoError(t, handler(ctx, kafkaGo.Message{Value: []byte(`{"type":"booking_cancelled","booking_id":"booking-2"}`)}))
				assert.Error(t, handler(ctx, kafkaGo.Message{Value: []byte(`not json`)}))

				return nil
			})

		var delivered []model.BookingNotification

		err := svc.Consume(context.Background(), func(_ context.Context, notification model.BookingNotification) error {
			delivered = append(delivered, notification)

			return nil
		})

		require.NoError(t, err)
		require.Len(t, delivered, 1)
		assert.Equal(t, model.TypeBookingCancelled, delivered[0].Type)
		assert.Equal(t, "booking-2", delivered[0].BookingID)
	})

	t.Run("consumer error", func(t *testing.T) {
		mockClient.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("topic name cannot be empty"))

		err := svc.Consume(context.Background(), func(context.Context, model.BookingNotification) error { return nil })

		assert.Error(t, err)
	})
}
