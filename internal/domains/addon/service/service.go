package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Addon=MockAddonService

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/addon/model"
	"hotel/internal/domains/addon/model/dto"
	"hotel/internal/domains/addon/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

const msgAddonNotFound = "addon not found"

type Addon interface {
	Create(ctx context.Context, req dto.CreateAddonRequest) (dto.AddonResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAddonsResponse, error)
	Get(ctx context.Context, id string) (dto.AddonResponse, error)
	Update(ctx context.Context, req dto.UpdateAddonRequest, id string) error
	Delete(ctx context.Context, id string) error
	// Resolve returns the active addons for ids in request order. Repeated ids
	// yield repeated addons.
	Resolve(ctx context.Context, ids []string) ([]model.Addon, error)
}

type serviceImpl struct {
	repo repository.Addon
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Addon, cfg *config.Config, otel otel.Otel) Addon {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAddonRequest) (res dto.AddonResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	addon := req.ToModel(user)

	if err = s.repo.Insert(ctx, addon); err != nil {
		log.Error().Err(err).Msg("failed to create addon")

		return res, fmt.Errorf("failed to create addon: %w", err)
	}

	res.FromModel(addon)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAddonsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count addons")

		return res, fmt.Errorf("failed to count addons: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get addons")

		return res, fmt.Errorf("failed to get addons: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AddonResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	addon, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get addon")

		return res, fmt.Errorf("failed to get addon: %w", err)
	}

	if addon.ID == constant.Empty {
		return res, failure.NotFound(msgAddonNotFound) // nolint:wrapcheck
	}

	res.FromModel(addon)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAddonRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req == (dto.UpdateAddonRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if addon exists")

		return fmt.Errorf("failed to check if addon exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgAddonNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update addon")

		return fmt.Errorf("failed to update addon: %w", err)
	}

	return nil
}

// Delete removes the addon from the catalog. Bookings keep their own copy of
// name and price.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if addon exists")

		return fmt.Errorf("failed to check if addon exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgAddonNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete addon")

		return fmt.Errorf("failed to delete addon: %w", err)
	}

	return nil
}

func (s *serviceImpl) Resolve(ctx context.Context, ids []string) (res []model.Addon, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(ids) == 0 {
		return nil, nil
	}

	unique := slices.Compact(slices.Sorted(slices.Values(ids)))

	addons, err := s.repo.GetAll(ctx, gDto.QueryParams{Limit: len(unique)}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: unique, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve addons")

		return nil, fmt.Errorf("failed to resolve addons: %w", err)
	}

	byID := make(map[string]model.Addon, len(addons))
	for _, addon := range addons {
		byID[addon.ID] = addon
	}

	res = make([]model.Addon, 0, len(ids))

	for _, id := range ids {
		addon, ok := byID[id]
		if !ok {
			return nil, failure.BadRequestf("unknown or inactive service id %s", id) // nolint:wrapcheck
		}

		res = append(res, addon)
	}

	return res, nil
}
