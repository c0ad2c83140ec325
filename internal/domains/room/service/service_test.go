package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *roomTypeMocks.MockRoomType) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)

	return service.New(mockRepo, mockRoomTypeRepo, &config.Config{}, mocks.NewOtel()), mockRepo, mockRoomTypeRepo
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func TestRoomService_Assign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name       string
		ctx        context.Context
		setupMock  func()
		wantNumber string
		wantNil    bool
		wantErr    bool
	}{
		{
			name: "claims a room as the request user",
			ctx:  userContext(),
			setupMock: func() {
				mockRepo.EXPECT().
					ClaimAvailable(gomock.Any(), "deluxe", "staff-1").
					Return(model.Room{ID: "room-1", RoomNumber: "101", Status: model.StatusOccupied}, true, nil)
			},
			wantNumber: "101",
		},
		{
			name: "falls back to the system actor",
			ctx:  context.Background(),
			setupMock: func() {
				mockRepo.EXPECT().
					ClaimAvailable(gomock.Any(), "deluxe", constant.SystemUser).
					Return(model.Room{ID: "room-2", RoomNumber: "102"}, true, nil)
			},
			wantNumber: "102",
		},
		{
			name: "no room left",
			ctx:  userContext(),
			setupMock: func() {
				mockRepo.EXPECT().
					ClaimAvailable(gomock.Any(), "deluxe", gomock.Any()).
					Return(model.Room{}, false, nil)
			},
			wantNil: true,
		},
		{
			name: "repository error",
			ctx:  userContext(),
			setupMock: func() {
				mockRepo.EXPECT().
					ClaimAvailable(gomock.Any(), "deluxe", gomock.Any()).
					Return(model.Room{}, false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			room, err := svc.Assign(tt.ctx, "deluxe")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, room)

				return
			}

			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, room)

				return
			}

			require.NotNil(t, room)
			assert.Equal(t, tt.wantNumber, room.RoomNumber)
		})
	}
}

func TestRoomService_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "releases an occupied room",
			setupMock: func() {
				mockRepo.EXPECT().Release(gomock.Any(), "room-1", "staff-1").Return(true, nil)
			},
		},
		{
			name: "room not occupied is a no-op",
			setupMock: func() {
				mockRepo.EXPECT().Release(gomock.Any(), "room-1", "staff-1").Return(false, nil)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Release(gomock.Any(), "room-1", "staff-1").Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Release(userContext(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomTypeRepo := newService(ctrl)

	roomTypeID := "8f14e45f-ceea-467f-a0e6-1f2a3b4c5d6e"
	deluxe := roomTypeModel.RoomType{ID: roomTypeID, Slug: "deluxe", Name: "Deluxe", TotalRooms: 2, Active: true}
	req := dto.CreateRoomRequest{RoomNumber: "204", RoomTypeID: roomTypeID}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "rooms.room_number = :room_number")
						assert.Contains(t, where, "rooms.active = :active")
						assert.Equal(t, "204", args["room_number"])
						assert.Equal(t, true, args["active"])

						return false, nil
					})
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "deluxe", room.RoomTypeSlug)
						assert.Equal(t, "Deluxe", room.RoomTypeName)
						assert.Equal(t, 2, room.Floor)
						assert.Equal(t, model.StatusAvailable, room.Status)
						assert.True(t, room.Active)

						return nil
					})
			},
		},
		{
			name: "room type not found",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive room type",
			setupMock: func() {
				inactive := deluxe
				inactive.Active = false

				mockRoomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "duplicate room number",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "room type at its ceiling",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on insert",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(userContext(), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "204", res.RoomNumber)
			assert.Equal(t, "staff-1", res.CreatedBy)
		})
	}
}

func TestRoomService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	room := func(status model.Status) model.Room {
		return model.Room{ID: "room-1", RoomNumber: "101", Status: status, Active: true}
	}

	tests := []struct {
		name      string
		status    string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name:   "available to maintenance",
			status: "maintenance",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusAvailable), nil)
				mockRepo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name:   "same status is a no-op",
			status: "maintenance",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusMaintenance), nil)
			},
		},
		{
			name:      "invalid status",
			status:    "cleaning",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "occupied cannot be set manually",
			status: "occupied",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusAvailable), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "occupied room cannot be freed manually",
			status: "available",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusOccupied), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "lost race",
			status: "reserved",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusAvailable), nil)
				mockRepo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "room not found",
			status: "reserved",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateStatus(userContext(), dto.UpdateRoomStatusRequest{Status: tt.status}, "room-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "soft deletes an available room",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1", Status: model.StatusAvailable, Active: true}, nil)
				mockRepo.EXPECT().
					UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) (int64, error) {
						active, ok := req["active"].(*bool)
						require.True(t, ok)
						assert.False(t, *active)

						return 1, nil
					})
			},
		},
		{
			name: "occupied room",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1", RoomNumber: "101", Status: model.StatusOccupied, Active: true}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "already deleted",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1", Status: model.StatusAvailable}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(userContext(), "room-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	floor := 3

	t.Run("empty request", func(t *testing.T) {
		err := svc.Update(userContext(), dto.UpdateRoomRequest{}, "room-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("updates floor", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", Active: true}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Update(userContext(), dto.UpdateRoomRequest{Floor: &floor}, "room-1"))
	})
}

func TestRoomService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	t.Run("reports remaining capacity", func(t *testing.T) {
		mockRepo.EXPECT().Availability(gomock.Any(), "").Return([]model.Availability{
			{RoomTypeSlug: "deluxe", TotalRooms: 5, ActiveRooms: 3, AvailableRooms: 2},
			{RoomTypeSlug: "suite", TotalRooms: 2, ActiveRooms: 4, AvailableRooms: 4},
		}, nil)

		res, err := svc.Availability(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, res.RoomTypes, 2)
		assert.Equal(t, 2, res.RoomTypes[0].Remaining)
		assert.Equal(t, 0, res.RoomTypes[1].Remaining)
	})

	t.Run("unknown room type", func(t *testing.T) {
		mockRepo.EXPECT().Availability(gomock.Any(), "penthouse").Return(nil, nil)

		_, err := svc.Availability(context.Background(), "penthouse")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().Availability(gomock.Any(), "").Return(nil, errors.New("database error"))

		_, err := svc.Availability(context.Background(), "")

		assert.Error(t, err)
	})
}
