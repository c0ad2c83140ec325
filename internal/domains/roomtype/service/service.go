package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomType=MockRoomTypeService

import (
	"context"
	"fmt"
	"path"
	"slices"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType       = "room_type:get"
	cacheGetRoomTypeBySlug = "room_type:slug"
	cacheGetAllRoomType    = "room_type:get_all"
	cacheCountRoomType     = "room_type:count"

	msgRoomTypeNotFound = "room type not found"
)

type RoomType interface {
	Create(ctx context.Context, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	DeleteImage(ctx context.Context, id string, req dto.DeleteImageRequest) error
}

type serviceImpl struct {
	repo     repository.RoomType
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.RoomType, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) RoomType {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	roomType := req.ToModel(user)

	if roomType.Slug == constant.Empty {
		return res, failure.BadRequestFromString("slug could not be derived from name") // nolint:wrapcheck
	}

	if roomType.MaxGuests > roomType.MaxAdults+roomType.MaxChildren {
		return res, failure.BadRequestFromString("max_guests cannot exceed max_adults plus max_children") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, s.filterBySlug(roomType.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type slug")

		return res, fmt.Errorf("failed to check room type slug: %w", err)
	}

	if exist {
		return res, failure.Conflictf("room type with slug %q already exists", roomType.Slug) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, roomType); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflictf("room type with slug %q already exists", roomType.Slug) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(roomType)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, err
	}

	roomTypes, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(roomTypes, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room type count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return total, fmt.Errorf("failed to count room types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.getCached(ctx, shared.BuildCacheKey(cacheGetRoomType, id), shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.getCached(ctx, shared.BuildCacheKey(cacheGetRoomTypeBySlug, slug), s.filterBySlug(slug))
}

func (s *serviceImpl) getCached(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (dto.RoomTypeResponse, error) {
	return cache.ReadThrough(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.RoomTypeResponse, err error) {
		roomType, err := s.repo.Get(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get room type")

			return res, fmt.Errorf("failed to get room type: %w", err)
		}

		if roomType.ID == constant.Empty {
			return res, failure.NotFound(msgRoomTypeNotFound) // nolint:wrapcheck
		}

		res.FromModel(roomType)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	roomType, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return failure.NotFound(msgRoomTypeNotFound) // nolint:wrapcheck
	}

	if req.TotalRooms > 0 && req.TotalRooms < roomType.TotalRooms {
		active, err := s.countActiveRooms(ctx, id)
		if err != nil {
			return err
		}

		if req.TotalRooms < active {
			return failure.Conflictf("total_rooms cannot be lower than the %d active rooms of this type", active) // nolint:wrapcheck
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	s.invalidate(ctx, roomType)

	return nil
}

// Delete deactivates the room type. Rooms keep referencing it, so the row stays.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	roomType, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty || !roomType.Active {
		return failure.NotFound(msgRoomTypeNotFound) // nolint:wrapcheck
	}

	active, err := s.countActiveRooms(ctx, id)
	if err != nil {
		return err
	}

	if active > 0 {
		return failure.Conflictf("room type still has %d active rooms", active) // nolint:wrapcheck
	}

	inactive := false

	fields := shared.TransformFields(struct {
		Active *bool `db:"active"`
	}{Active: &inactive}, user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room type")

		return fmt.Errorf("failed to delete room type: %w", err)
	}

	s.invalidate(ctx, roomType)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	roomType, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound(msgRoomTypeNotFound) // nolint:wrapcheck
	}

	url, err := s.s3.UploadFile(ctx, path.Join(model.EntityName, id), req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	images := append(slices.Clone(roomType.Images), url)

	fields := shared.TransformFields(dto.UpdateRoomTypeRequest{Images: pq.StringArray(images)}, user)
	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to attach image to room type")

		go func() {
			if err := s.s3.DeleteByURL(context.WithoutCancel(ctx), url); err != nil {
				log.Warn().Err(err).Str("url", url).Msg("failed to remove orphaned image")
			}
		}()

		return res, fmt.Errorf("failed to attach image to room type: %w", err)
	}

	s.invalidate(ctx, roomType)

	res.URL = url
	res.FileName = req.Image.Filename
	res.Images = images

	return res, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, id string, req dto.DeleteImageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	roomType, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return failure.NotFound(msgRoomTypeNotFound) // nolint:wrapcheck
	}

	if !slices.Contains(roomType.Images, req.ImageURL) {
		return failure.NotFound("image not found on room type") // nolint:wrapcheck
	}

	images := slices.DeleteFunc(slices.Clone(roomType.Images), func(image string) bool {
		return image == req.ImageURL
	})

	fields := shared.TransformFields(struct {
		Images pq.StringArray `db:"images"`
	}{Images: pq.StringArray(append([]string{}, images...))}, user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to detach image from room type")

		return fmt.Errorf("failed to detach image from room type: %w", err)
	}

	s.invalidate(ctx, roomType)

	go func() {
		if err := s.s3.DeleteByURL(context.WithoutCancel(ctx), req.ImageURL); err != nil {
			log.Warn().Err(err).Str("url", req.ImageURL).Msg("failed to delete image from S3")
		}
	}()

	return nil
}

func (s *serviceImpl) countActiveRooms(ctx context.Context, roomTypeID string) (int, error) {
	count, err := s.roomRepo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldRoomTypeID, Value: roomTypeID, Operator: gDto.FilterOperatorEq, Table: roomModel.TableName},
			gDto.Filter{Field: roomModel.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: roomModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms of room type")

		return 0, fmt.Errorf("failed to count rooms of room type: %w", err)
	}

	return count, nil
}

func (s *serviceImpl) filterBySlug(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldSlug, Value: slug, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, roomType model.RoomType) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, roomType.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomTypeBySlug, roomType.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()
}
