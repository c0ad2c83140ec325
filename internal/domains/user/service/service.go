package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	keyUser      = "user:get"
	keyUserList  = "user:gets"
	keyUserCount = "user:count"
)

var (
	errEmailTaken   = failure.Conflict("email already registered")
	errUserNotFound = failure.NotFound("user not found")
)

// User manages staff accounts. Callers act with the role carried on the
// request context and may only touch accounts ranked below them.
type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user."+op)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.scope(ctx, "Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	by := actorOf(ctx)
	account := req.ToModel(by.id, constant.Empty)

	if !model.CanManage(by.role, account.Role) {
		return res, failure.Forbidden(fmt.Sprintf("role %s cannot create %s accounts", by.role, account.Role)) // nolint:wrapcheck
	}

	taken, err := s.repo.Exist(ctx, repository.EmailFilter(account.Email))
	if err != nil {
		return res, fmt.Errorf("checking email %s: %w", account.Email, err)
	}

	if taken {
		return res, errEmailTaken
	}

	if account.Password, err = password.Hash(req.Password); err != nil {
		return res, fmt.Errorf("hashing password: %w", err)
	}

	err = s.repo.Insert(ctx, account)

	switch {
	case shared.IsUniqueViolation(err):
		return res, errEmailTaken
	case err != nil:
		log.Error().Err(err).Str("email", account.Email).Msg("user insert failed")

		return res, fmt.Errorf("inserting user: %w", err)
	}

	log.Info().
		Str("user_id", account.ID).
		Str("role", account.Role).
		Str("created_by", by.id).
		Msg("user created")

	s.forgetLists(ctx)
	res.FromModel(account)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.scope(ctx, "GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(keyUserList, req, filter)

	return cache.ReadThrough(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (page dto.GetUsersResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return page, err
		}

		accounts, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return page, fmt.Errorf("listing users: %w", err)
		}

		page.FromModels(accounts, total, req.Limit)

		return page, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.scope(ctx, "Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(keyUserCount, req, filter)

	return cache.ReadThrough(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("counting users: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.scope(ctx, "Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.ReadThrough(ctx, s.cache, shared.BuildCacheKey(keyUser, id), s.cfg.Cache.TTL, func(ctx context.Context) (view dto.UserResponse, err error) {
		account, err := s.find(ctx, id)
		if err != nil {
			return view, err
		}

		view.FromModel(account)

		return view, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.scope(ctx, "Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req == (dto.UpdateUserRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	by := actorOf(ctx)

	account, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if account.ID == by.id && (req.Role != nil || req.Active != nil) {
		return failure.Forbidden("cannot change your own role or status") // nolint:wrapcheck
	}

	if err = by.mayManage(account.Role); err != nil {
		return err
	}

	if req.Role != nil {
		if err = by.mayManage(*req.Role); err != nil {
			return err
		}
	}

	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		req.FullName = &trimmed
	}

	fields := shared.TransformFields(req, by.id)
	if err = s.repo.Update(ctx, fields, byID(id)); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("user update failed")

		return fmt.Errorf("updating user %s: %w", id, err)
	}

	s.forget(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	by := actorOf(ctx)
	if id == by.id {
		return failure.Forbidden("cannot delete your own account") // nolint:wrapcheck
	}

	account, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = by.mayManage(account.Role); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("user delete failed")

		return fmt.Errorf("deleting user %s: %w", id, err)
	}

	log.Info().Str("user_id", id).Str("deleted_by", by.id).Msg("user deleted")
	s.forget(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	account, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		return account, fmt.Errorf("loading user %s: %w", id, err)
	}

	if account.ID == constant.Empty {
		return account, errUserNotFound
	}

	return account, nil
}

func (s *serviceImpl) forget(ctx context.Context, id string) {
	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(keyUser, id)); err != nil {
			log.Error().Err(err).Str("user_id", id).Msg("failed to evict cached user")
		}
	}()

	s.forgetLists(ctx)
}

func (s *serviceImpl) forgetLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, keyUserList)
		shared.InvalidateCaches(c, s.cache, keyUserCount)
	}()
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// actor is the account performing the request. Background jobs run as the
// system user with no role.
type actor struct {
	id   string
	role string
}

func actorOf(ctx context.Context) actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if id == constant.Empty {
		id = constant.SystemUser
	}

	return actor{id: id, role: role}
}

func (a actor) mayManage(role string) error {
	if model.CanManage(a.role, role) {
		return nil
	}

	return failure.Forbidden(fmt.Sprintf("role %s cannot manage %s accounts", a.role, role)) // nolint:wrapcheck
}
