package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
)

const roomTypeTable = "room_types"

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	ClaimAvailable(ctx context.Context, roomTypeSlug, actor string) (model.Room, bool, error)
	Release(ctx context.Context, id, actor string) (bool, error)
	Availability(ctx context.Context, roomTypeSlug string) ([]model.Availability, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ClaimAvailable flips the lowest numbered available, active room of the type
// to occupied in a single statement. Rows locked by a concurrent claim are
// skipped, so two callers never receive the same room.
func (r *repositoryImpl) ClaimAvailable(ctx context.Context, roomTypeSlug, actor string) (room model.Room, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ClaimAvailable")
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := fmt.Sprintf(`UPDATE %[1]s SET status = :occupied, modified_at = :modified_at, modified_by = :modified_by
		WHERE id = (
			SELECT id FROM %[1]s
			WHERE room_type_slug = :room_type_slug AND status = :available AND active = TRUE
			ORDER BY LENGTH(room_number), room_number
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		) AND status = :available
		RETURNING %[2]s`,
		model.TableName,
		r.Columns(ctx),
	)

	found, err = r.WriteQuery(ctx, &room, query, map[string]any{
		"occupied":       model.StatusOccupied,
		"available":      model.StatusAvailable,
		"room_type_slug": roomTypeSlug,
		"modified_at":    timezone.Now(),
		"modified_by":    actor,
	})
	if err != nil {
		return room, false, err
	}

	return room, found, nil
}

// Release moves an occupied room back to available. It reports false when the
// room was not occupied.
func (r *repositoryImpl) Release(ctx context.Context, id, actor string) (released bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Release")
	defer scope.End()
	defer scope.TraceIfError(&err)

	affected, err := r.UpdateCount(ctx, map[string]any{
		model.FieldStatus:        model.StatusAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}, shared.FilterByIDAndStatus(id, model.FieldID, model.FieldStatus, string(model.StatusOccupied), model.TableName))
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *repositoryImpl) Availability(ctx context.Context, roomTypeSlug string) (res []model.Availability, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Availability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	args := map[string]any{"available": model.StatusAvailable}
	where := []string{"rt.active = TRUE"}

	if roomTypeSlug != constant.Empty {
		where = append(where, "rt.slug = :slug")
		args["slug"] = roomTypeSlug
	}

	query := fmt.Sprintf(`SELECT rt.id AS room_type_id, rt.slug AS room_type_slug, rt.name AS room_type_name, rt.total_rooms,
			COUNT(r.id) FILTER (WHERE r.active) AS active_rooms,
			COUNT(r.id) FILTER (WHERE r.active AND r.status = :available) AS available_rooms
		FROM %s rt
		LEFT JOIN %s r ON r.room_type_id = rt.id
		WHERE %s
		GROUP BY rt.id, rt.slug, rt.name, rt.total_rooms
		ORDER BY rt.name`,
		roomTypeTable,
		model.TableName,
		strings.Join(where, " AND "),
	)

	if err = r.SelectQuery(ctx, &res, query, args); err != nil {
		return nil, err
	}

	return res, nil
}
