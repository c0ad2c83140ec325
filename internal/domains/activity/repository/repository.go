package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/activity/model"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Activity interface {
	Insert(ctx context.Context, event model.StatusEvent) error
	FindByBooking(ctx context.Context, bookingID string, limit int64) ([]model.StatusEvent, error)
	EnsureIndexes(ctx context.Context) error
}

type repositoryImpl struct {
	col  *mongo.Collection
	otel otel.Otel
}

func New(db *mongo.Database, otel otel.Otel) Activity {
	return &repositoryImpl{
		col:  db.Collection(model.CollectionName),
		otel: otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, event model.StatusEvent) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelMongoScopeName, constant.OtelMongoScopeName+"."+model.EntityName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = r.col.InsertOne(ctx, event); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (r *repositoryImpl) FindByBooking(ctx context.Context, bookingID string, limit int64) (res []model.StatusEvent, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelMongoScopeName, constant.OtelMongoScopeName+"."+model.EntityName+".FindByBooking")
	defer scope.End()
	defer scope.TraceIfError(&err)

	opts := options.Find().SetSort(bson.D{{Key: model.FieldAt, Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.col.Find(ctx, bson.M{model.FieldBookingID: bookingID}, opts)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	res = []model.StatusEvent{}
	if err = cursor.All(ctx, &res); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", model.EntityName, err)
	}

	return res, nil
}

func (r *repositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: model.FieldBookingID, Value: 1},
			{Key: model.FieldAt, Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create index (%s): %w", model.EntityName, err)
	}

	return nil
}
