package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
	FindByReference(ctx context.Context, suffix, email string) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CountByStatus(ctx context.Context) (res []model.StatusCount, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountByStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := fmt.Sprintf(
		"SELECT %[1]s.booking_status, COUNT(%[1]s.id) AS count, COALESCE(SUM(%[1]s.total_amount), 0) AS revenue FROM %[1]s GROUP BY %[1]s.booking_status",
		model.TableName,
	)

	if err = r.SelectQuery(ctx, &res, query, map[string]any{}); err != nil {
		return nil, err
	}

	return res, nil
}

// FindByReference matches the id suffix of a reference together with the
// guest email, newest booking first.
func (r *repositoryImpl) FindByReference(ctx context.Context, suffix, email string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindByReference")
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := fmt.Sprintf(
		"SELECT %[2]s FROM %[1]s WHERE RIGHT(REPLACE(CAST(%[1]s.id AS TEXT), '-', ''), :suffix_length) = :suffix AND LOWER(%[1]s.guest_email) = :email ORDER BY %[1]s.created_at DESC LIMIT 1",
		model.TableName,
		r.Columns(ctx),
	)

	var bookings []model.Booking

	err = r.SelectQuery(ctx, &bookings, query, map[string]any{
		"suffix_length": len(suffix),
		"suffix":        suffix,
		"email":         email,
	})
	if err != nil {
		return res, err
	}

	if len(bookings) == 0 {
		return res, nil
	}

	return bookings[0], nil
}
