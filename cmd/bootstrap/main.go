package main

import (
	"context"

	"hotel/config"
	"hotel/di"
	"hotel/internal/domains/user/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

// bootstrap creates the first superadmin account so staff can log in and
// manage everyone else. Running it again is a no-op.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	timezone.Use(cfg.App.Timezone)

	req := dto.CreateUserRequest{
		Email:    cfg.Bootstrap.AdminEmail,
		Password: cfg.Bootstrap.AdminPassword,
		FullName: cfg.Bootstrap.AdminName,
		Role:     constant.RoleSuperAdmin,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		log.Fatal().Err(err).Msg("BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD must be set")
	}

	users, cleanup, err := di.InitializeUserService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize user service")
	}
	defer cleanup()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, constant.SystemUser)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

	user, err := users.Create(ctx, req)

	switch {
	case err == nil:
		log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("Superadmin created")
	case failure.IsConflict(err):
		log.Info().Str("email", req.Email).Msg("Superadmin already exists")
	default:
		log.Error().Err(err).Msg("Failed to create superadmin")
	}
}
