package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
)

type fixture struct {
	svc   service.User
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
}

func newFixture(ctrl *gomock.Controller) fixture {
	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func asRole(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func account(id, role string) model.User {
	return model.User{ID: id, Email: id + "@hotel.test", FullName: "Account " + id, Role: role, Active: true}
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateUserRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "admin creates staff with hashed password",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			req:  dto.CreateUserRequest{Email: "Desk@Hotel.test", Password: "s3cretpass", FullName: "Front Desk"},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, "desk@hotel.test", user.Email)
						assert.Equal(t, constant.RoleStaff, user.Role)
						assert.Equal(t, "admin-1", user.CreatedBy)
						assert.NoError(t, password.Verify("s3cretpass", user.Password))

						return nil
					})
			},
		},
		{
			name:      "admin cannot create another admin",
			ctx:       asRole("admin-1", constant.RoleAdmin),
			req:       dto.CreateUserRequest{Email: "boss@hotel.test", Password: "s3cretpass", FullName: "Boss", Role: constant.RoleAdmin},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name:      "staff cannot create accounts",
			ctx:       asRole("staff-1", constant.RoleStaff),
			req:       dto.CreateUserRequest{Email: "new@hotel.test", Password: "s3cretpass", FullName: "New"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name: "superadmin creates admin",
			ctx:  asRole("root", constant.RoleSuperAdmin),
			req:  dto.CreateUserRequest{Email: "boss@hotel.test", Password: "s3cretpass", FullName: "Boss", Role: constant.RoleAdmin},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate email",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			req:  dto.CreateUserRequest{Email: "desk@hotel.test", Password: "s3cretpass", FullName: "Front Desk"},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unique violation on insert",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			req:  dto.CreateUserRequest{Email: "desk@hotel.test", Password: "s3cretpass", FullName: "Front Desk"},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.True(t, res.Active)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	t.Run("cache miss loads from repository", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("staff-1", constant.RoleStaff), nil)

		res, err := f.svc.Get(context.Background(), "staff-1")

		require.NoError(t, err)
		assert.Equal(t, "staff-1@hotel.test", res.Email)
		assert.Nil(t, res.LastLoginAt)
	})

	t.Run("missing user", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.Get(context.Background(), "ghost")

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	params := gDto.QueryParams{Limit: 1, Page: 1}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.User{account("staff-1", constant.RoleStaff)}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Users, 1)
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	name := "  Night Auditor  "
	admin := constant.RoleAdmin
	inactive := false

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		req       dto.UpdateUserRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "admin renames staff",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			id:   "staff-1",
			req:  dto.UpdateUserRequest{FullName: &name},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("staff-1", constant.RoleStaff), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						fullName, ok := fields[model.FieldFullName].(*string)
						require.True(t, ok)
						assert.Equal(t, "Night Auditor", *fullName)
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name:      "empty request",
			ctx:       asRole("admin-1", constant.RoleAdmin),
			id:        "staff-1",
			req:       dto.UpdateUserRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "admin cannot promote to admin",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			id:   "staff-1",
			req:  dto.UpdateUserRequest{Role: &admin},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("staff-1", constant.RoleStaff), nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "cannot deactivate self",
			ctx:  asRole("root", constant.RoleSuperAdmin),
			id:   "root",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("root", constant.RoleSuperAdmin), nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "superadmin deactivates admin",
			ctx:  asRole("root", constant.RoleSuperAdmin),
			id:   "admin-1",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("admin-1", constant.RoleAdmin), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing user",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			id:   "ghost",
			req:  dto.UpdateUserRequest{FullName: &name},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Update(tt.ctx, tt.req, tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "admin removes staff",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			id:   "staff-1",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("staff-1", constant.RoleStaff), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "cannot delete self",
			ctx:       asRole("admin-1", constant.RoleAdmin),
			id:        "admin-1",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name: "admin cannot remove superadmin",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			id:   "root",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("root", constant.RoleSuperAdmin), nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "repository error",
			ctx:  asRole("admin-1", constant.RoleAdmin),
			id:   "staff-1",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account("staff-1", constant.RoleStaff), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Delete(tt.ctx, tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
