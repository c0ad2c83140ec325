//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/mongo"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	addonRepository "hotel/internal/domains/addon/repository"
	addonService "hotel/internal/domains/addon/service"
	activityService "hotel/internal/domains/activity/service"
	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	notificationService "hotel/internal/domains/notification/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	roomTypeRepository "hotel/internal/domains/roomtype/repository"
	roomTypeService "hotel/internal/domains/roomtype/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"

	addonHandler "hotel/internal/handlers/addon"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	roomHandler "hotel/internal/handlers/room"
	roomTypeHandler "hotel/internal/handlers/roomtype"
	userHandler "hotel/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	mongo.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var inventoryDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
	roomRepository.New,
	roomService.New,
	provideAllocator,
)

var bookingDomain = wire.NewSet(
	addonRepository.New,
	addonService.New,
	provideActivityRepository,
	activityService.New,
	notificationService.New,
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	inventoryDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	roomTypeHandler.New,
	addonHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}

// InitializeUserService builds only what account bootstrap needs.
func InitializeUserService() (userService.User, func(), error) {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		sharedHelpers,
		userDomain,
	)

	return nil, nil, nil
}

// InitializeNotifier builds the booking notification consumer.
func InitializeNotifier() (notificationService.Notifier, func(), error) {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		notificationService.New,
	)

	return nil, nil, nil
}
