package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Activity=MockActivityService

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/activity/model/dto"
	"hotel/internal/domains/activity/repository"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

const historyLimit = 200

// Activity keeps the status history of bookings. Recording never fails the
// caller: the booking row stays the source of truth.
type Activity interface {
	Record(ctx context.Context, req dto.RecordRequest)
	History(ctx context.Context, bookingID string) (dto.HistoryResponse, error)
}

type serviceImpl struct {
	repo repository.Activity
	otel otel.Otel
}

func New(repo repository.Activity, otel otel.Otel) Activity {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, req dto.RecordRequest) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()

	if err := s.repo.Insert(ctx, req.ToModel()); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("booking_id", req.BookingID).Msg("failed to record booking status event")
	}
}

func (s *serviceImpl) History(ctx context.Context, bookingID string) (res dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(&err)

	events, err := s.repo.FindByBooking(ctx, bookingID, historyLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res.FromModels(bookingID, events)

	return res, nil
}
