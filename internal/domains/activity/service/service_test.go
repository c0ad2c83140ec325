package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	activityMocks "hotel/internal/domains/activity/mocks"
	"hotel/internal/domains/activity/model"
	"hotel/internal/domains/activity/model/dto"
	"hotel/internal/domains/activity/service"
	"hotel/shared/constant"
)

func TestActivityService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := activityMocks.NewMockActivity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.RecordRequest{
		BookingID:         "booking-1",
		FromBookingStatus: "pending",
		ToBookingStatus:   "confirmed",
		FromPaymentStatus: "pending",
		ToPaymentStatus:   "paid",
		RoomNumber:        "101",
	}

	t.Run("stores the event with a system actor", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event model.StatusEvent) error {
				assert.NotEmpty(t, event.ID)
				assert.Equal(t, "booking-1", event.BookingID)
				assert.Equal(t, "confirmed", event.ToBookingStatus)
				assert.Equal(t, constant.SystemUser, event.Actor)
				assert.False(t, event.At.IsZero())

				return nil
			})

		svc.Record(context.Background(), req)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))

		assert.NotPanics(t, func() {
			svc.Record(context.Background(), req)
		})
	})
}

func TestActivityService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := activityMocks.NewMockActivity(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("newest first from the store", func(t *testing.T) {
		at := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			FindByBooking(gomock.Any(), "booking-1", gomock.Any()).
			Return([]model.StatusEvent{
				{BookingID: "booking-1", FromBookingStatus: "confirmed", ToBookingStatus: "cancelled", Reason: "guest request", Actor: "staff-1", At: at},
				{BookingID: "booking-1", FromBookingStatus: "pending", ToBookingStatus: "confirmed", Actor: "system", At: at.Add(-time.Hour)},
			}, nil)

		res, err := svc.History(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		require.Len(t, res.Events, 2)
		assert.Equal(t, "cancelled", res.Events[0].ToBookingStatus)
		assert.Equal(t, "guest request", res.Events[0].Reason)
		assert.NotEmpty(t, res.Events[0].At)
	})

	t.Run("empty history", func(t *testing.T) {
		mockRepo.EXPECT().FindByBooking(gomock.Any(), "booking-2", gomock.Any()).Return([]model.StatusEvent{}, nil)

		res, err := svc.History(context.Background(), "booking-2")

		require.NoError(t, err)
		assert.Empty(t, res.Events)
		assert.NotNil(t, res.Events)
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().FindByBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("mongo down"))

		_, err := svc.History(context.Background(), "booking-3")

		assert.Error(t, err)
	})
}
