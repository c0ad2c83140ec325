package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgRoomNotFound     = "room not found"
	msgRoomTypeNotFound = "room type not found"
)

// Allocator binds bookings to physical rooms.
type Allocator interface {
	// Assign claims the lowest numbered available room of the type. It
	// returns nil without error when every room is taken.
	Assign(ctx context.Context, roomTypeSlug string) (*model.Room, error)
	Release(ctx context.Context, roomID string) error
}

type Room interface {
	Allocator
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, roomTypeSlug string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo         repository.Room
	roomTypeRepo roomTypeRepo.RoomType
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Room, roomTypeRepo roomTypeRepo.RoomType, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Assign(ctx context.Context, roomTypeSlug string) (res *model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer scope.TraceIfError(&err)

	room, found, err := s.repo.ClaimAvailable(ctx, roomTypeSlug, actor(ctx))
	if err != nil {
		log.Error().Err(err).Str("room_type", roomTypeSlug).Msg("failed to claim room")

		return nil, fmt.Errorf("failed to claim room: %w", err)
	}

	scope.SetAttribute("room.type", roomTypeSlug)

	if !found {
		scope.AddEvent("no room available")
		log.Warn().Str("room_type", roomTypeSlug).Msg("no available room to assign")

		return nil, nil
	}

	scope.SetAttribute("room.number", room.RoomNumber)
	log.Info().Str("room_type", roomTypeSlug).Str("room_number", room.RoomNumber).Msg("room assigned")

	return &room, nil
}

func (s *serviceImpl) Release(ctx context.Context, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(&err)

	released, err := s.repo.Release(ctx, roomID, actor(ctx))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to release room")

		return fmt.Errorf("failed to release room: %w", err)
	}

	if !released {
		scope.AddEvent("room not occupied")
		log.Warn().Str("room_id", roomID).Msg("room was not occupied, nothing to release")
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty || !roomType.Active {
		return res, failure.NotFound(msgRoomTypeNotFound) // nolint:wrapcheck
	}

	room := req.ToModel(user, dto.RoomTypeSnapshot{ID: roomType.ID, Slug: roomType.Slug, Name: roomType.Name})

	exist, err := s.repo.Exist(ctx, activeRoomNumber(room.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return res, fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return res, failure.Conflictf("room number %s already exists", room.RoomNumber) // nolint:wrapcheck
	}

	active, err := s.repo.Count(ctx, activeRoomsOfType(roomType.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms of room type")

		return res, fmt.Errorf("failed to count rooms of room type: %w", err)
	}

	if active >= roomType.TotalRooms {
		return res, failure.Conflictf( // nolint:wrapcheck
			"room type %s has reached its limit of %d rooms (current: %d)", roomType.Name, roomType.TotalRooms, active,
		)
	}

	if err = s.repo.Insert(ctx, room); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflictf("room number %s already exists", room.RoomNumber) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	rooms, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req == (dto.UpdateRoomRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getActive(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// UpdateStatus applies a manual status change. Occupied is never set or
// cleared here.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next := model.Status(req.Status)
	if !next.Valid() {
		return failure.BadRequestf("invalid room status %q", req.Status) // nolint:wrapcheck
	}

	room, err := s.getActive(ctx, id)
	if err != nil {
		return err
	}

	if room.Status == next {
		return nil
	}

	if !room.Status.CanSetManually(next) {
		return failure.Conflictf("cannot change room status from %s to %s", room.Status, next) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := shared.TransformFields(struct {
		Status model.Status `db:"status"`
	}{Status: next}, user)

	affected, err := s.repo.UpdateCount(ctx, fields, shared.FilterByIDAndStatus(id, model.FieldID, model.FieldStatus, string(room.Status), model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("room status changed concurrently, please retry") // nolint:wrapcheck
	}

	return nil
}

// Delete soft-deletes the room. Occupied rooms are refused.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	room, err := s.getActive(ctx, id)
	if err != nil {
		return err
	}

	if room.Status == model.StatusOccupied {
		return failure.Conflictf("room %s is occupied and cannot be deleted", room.RoomNumber) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	inactive := false
	fields := shared.TransformFields(struct {
		Active *bool `db:"active"`
	}{Active: &inactive}, user)

	affected, err := s.repo.UpdateCount(ctx, fields, shared.FilterByIDAndStatus(id, model.FieldID, model.FieldStatus, string(room.Status), model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("room status changed concurrently, please retry") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Availability(ctx context.Context, roomTypeSlug string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	availability, err := s.repo.Availability(ctx, roomTypeSlug)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room availability")

		return res, fmt.Errorf("failed to get room availability: %w", err)
	}

	if roomTypeSlug != constant.Empty && len(availability) == 0 {
		return res, failure.NotFound(msgRoomTypeNotFound) // nolint:wrapcheck
	}

	res.FromModels(availability)

	return res, nil
}

func (s *serviceImpl) getActive(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return room, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	return room, nil
}

// activeRoomNumber matches the room currently using number. Retired rooms
// give their number back.
func activeRoomNumber(number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomNumber, Value: number, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func activeRoomsOfType(roomTypeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomTypeID, Value: roomTypeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func actor(ctx context.Context) string {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != constant.Empty {
		return user
	}

	return constant.SystemUser
}
