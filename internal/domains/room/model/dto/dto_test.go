package dto_test

import (
	"net/http/httptest"
	"testing"

	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorFromRoomNumber(t *testing.T) {
	tests := []struct {
		roomNumber string
		want       int
	}{
		{roomNumber: "101", want: 1},
		{roomNumber: "305", want: 3},
		{roomNumber: "912A", want: 9},
		{roomNumber: "012", want: 1},
		{roomNumber: "G1", want: 1},
		{roomNumber: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.roomNumber, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.FloorFromRoomNumber(tt.roomNumber))
		})
	}
}

func TestCreateRoomRequest_ToModel(t *testing.T) {
	snapshot := dto.RoomTypeSnapshot{ID: "rt-1", Slug: "deluxe", Name: "Deluxe"}

	t.Run("floor derived from number", func(t *testing.T) {
		req := dto.CreateRoomRequest{RoomNumber: " 402 ", RoomTypeID: "rt-1"}

		room := req.ToModel("staff-1", snapshot)

		assert.NotEmpty(t, room.ID)
		assert.Equal(t, "402", room.RoomNumber)
		assert.Equal(t, 4, room.Floor)
		assert.Equal(t, "deluxe", room.RoomTypeSlug)
		assert.Equal(t, "Deluxe", room.RoomTypeName)
		assert.Equal(t, model.StatusAvailable, room.Status)
		assert.True(t, room.Active)
		assert.Equal(t, "staff-1", room.CreatedBy)
	})

	t.Run("explicit floor wins", func(t *testing.T) {
		floor := 0
		req := dto.CreateRoomRequest{RoomNumber: "402", RoomTypeID: "rt-1", Floor: &floor}

		assert.Equal(t, 0, req.ToModel("staff-1", snapshot).Floor)
	})
}

func TestListFilter_FromRequest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantErr    bool
		wantActive bool
		wantFloor  *int
		wantFields int
	}{
		{name: "defaults to active rooms", query: "", wantActive: true, wantFields: 1},
		{name: "inactive rooms", query: "active=false", wantActive: false, wantFields: 1},
		{name: "all filters", query: "room_type=deluxe&status=available&floor=2&search=20", wantActive: true, wantFloor: intPtr(2), wantFields: 5},
		{name: "invalid floor", query: "floor=top", wantErr: true},
		{name: "invalid status", query: "status=cleaning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/rooms?"+tt.query, nil)

			var filter dto.ListFilter

			err := filter.FromRequest(r)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantActive, filter.Active)
			assert.Equal(t, tt.wantFloor, filter.Floor)
			assert.Len(t, filter.ToFilterGroup().Filters, tt.wantFields)
		})
	}
}

func TestListFilter_ToFilterGroup(t *testing.T) {
	filter := dto.ListFilter{RoomType: "deluxe", Active: true}
	group := filter.ToFilterGroup()

	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.active = :active AND rooms.room_type_slug = :room_type_slug)", where)
	assert.Equal(t, true, args["active"])
	assert.Equal(t, "deluxe", args["room_type_slug"])
}

func TestAvailabilityResponse_FromModels(t *testing.T) {
	var res dto.AvailabilityResponse

	res.FromModels([]model.Availability{
		{RoomTypeSlug: "deluxe", TotalRooms: 4, ActiveRooms: 1, AvailableRooms: 1},
	})

	require.Len(t, res.RoomTypes, 1)
	assert.Equal(t, 3, res.RoomTypes[0].Remaining)
	assert.Equal(t, 1, res.RoomTypes[0].AvailableRooms)
}

func intPtr(v int) *int {
	return &v
}
