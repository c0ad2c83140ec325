package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/domains/roomtype/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

type fixture struct {
	svc      service.RoomType
	repo     *roomTypeMocks.MockRoomType
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newFixture(ctrl *gomock.Controller) fixture {
	f := fixture{
		repo:     roomTypeMocks.NewMockRoomType(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.roomRepo, cfg, f.cache, mocks.NewOtel(), f.s3)

	// cache maintenance runs in the background
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func TestRoomTypeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	valid := dto.CreateRoomTypeRequest{
		Name:          "Deluxe Ocean View",
		MaxAdults:     2,
		MaxChildren:   1,
		MaxGuests:     3,
		TotalRooms:    5,
		PricePerNight: 1200000,
	}

	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation derives slug",
			req:  valid,
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
						assert.Equal(t, "deluxe-ocean-view", roomType.Slug)
						assert.True(t, roomType.Active)

						return nil
					})
			},
		},
		{
			name: "guest ceiling above adults and children",
			req: dto.CreateRoomTypeRequest{
				Name: "Suite", MaxAdults: 2, MaxChildren: 0, MaxGuests: 4, TotalRooms: 1,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "name without slug characters",
			req:       dto.CreateRoomTypeRequest{Name: "!!", MaxAdults: 1, MaxGuests: 1, TotalRooms: 1},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slug taken",
			req:  valid,
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on insert",
			req:  valid,
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  valid,
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(staffContext(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "deluxe-ocean-view", res.Slug)
			assert.Empty(t, res.Images)
		})
	}
}

func TestRoomTypeService_GetBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	t.Run("cache hit", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), "room_type:slug:deluxe", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.RoomTypeResponse)
				require.True(t, ok)

				res.Slug = "deluxe"

				return nil
			})

		res, err := f.svc.GetBySlug(context.Background(), "deluxe")

		require.NoError(t, err)
		assert.Equal(t, "deluxe", res.Slug)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "rt-1", Slug: "suite", Name: "Suite"}, nil)

		res, err := f.svc.GetBySlug(context.Background(), "suite")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "rt-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := f.svc.GetBySlug(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.RoomType{{ID: "rt-1"}, {ID: "rt-2"}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.RoomTypes, 2)
}

func TestRoomTypeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	existing := model.RoomType{ID: "rt-1", Slug: "deluxe", TotalRooms: 5, Active: true}

	tests := []struct {
		name      string
		req       dto.UpdateRoomTypeRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name:      "empty request",
			req:       dto.UpdateRoomTypeRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateRoomTypeRequest{Name: "Deluxe King"},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "rename",
			req:  dto.UpdateRoomTypeRequest{Name: "Deluxe King"},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Deluxe King", req["name"])
						assert.NotContains(t, req, "slug")

						return nil
					})
			},
		},
		{
			name: "shrinking below active rooms",
			req:  dto.UpdateRoomTypeRequest{TotalRooms: 2},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "shrinking to active rooms",
			req:  dto.UpdateRoomTypeRequest{TotalRooms: 3},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Update(staffContext(), tt.req, "rt-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomTypeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	existing := model.RoomType{ID: "rt-1", Slug: "deluxe", Active: true}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "deactivates an empty room type",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "active rooms remain",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "already inactive",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "rt-1"}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Delete(staffContext(), "rt-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomTypeService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	req := dto.UploadImageRequest{Image: &multipart.FileHeader{Filename: "room.jpg"}}

	t.Run("appends uploaded image", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: "rt-1", Images: pq.StringArray{"https://cdn/a.jpg"}}, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), "room_type/rt-1", req.Image).Return("https://cdn/b.jpg", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UploadImage(staffContext(), "rt-1", req)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/b.jpg", res.URL)
		assert.Equal(t, "room.jpg", res.FileName)
		assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, res.Images)
	})

	t.Run("removes the object when the update fails", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "rt-1"}, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/c.jpg", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/c.jpg").Return(nil)

		_, err := f.svc.UploadImage(staffContext(), "rt-1", req)

		time.Sleep(10 * time.Millisecond)

		assert.Error(t, err)
	})
}

func TestRoomTypeService_DeleteImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	existing := model.RoomType{ID: "rt-1", Images: pq.StringArray{"https://cdn/a.jpg", "https://cdn/b.jpg"}}

	t.Run("unknown image", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

		err := f.svc.DeleteImage(staffContext(), "rt-1", dto.DeleteImageRequest{ImageURL: "https://cdn/z.jpg"})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("detaches and deletes", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, pq.StringArray{"https://cdn/b.jpg"}, req["images"])

				return nil
			})
		f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/a.jpg").Return(nil)

		err := f.svc.DeleteImage(staffContext(), "rt-1", dto.DeleteImageRequest{ImageURL: "https://cdn/a.jpg"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
