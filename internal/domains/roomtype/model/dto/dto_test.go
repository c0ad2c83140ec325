package dto_test

import (
	"net/http/httptest"
	"testing"

	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Deluxe Ocean View", want: "deluxe-ocean-view"},
		{in: "  Family  Suite!! ", want: "family-suite"},
		{in: "Kamar_Standar 2", want: "kamar-standar-2"},
		{in: "--already-slugged--", want: "already-slugged"},
		{in: "!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.Slugify(tt.in))
		})
	}
}

func TestCreateRoomTypeRequest_ToModel(t *testing.T) {
	t.Run("explicit slug is normalised", func(t *testing.T) {
		req := dto.CreateRoomTypeRequest{Slug: "Deluxe King", Name: " Deluxe ", MaxAdults: 2, MaxGuests: 2, TotalRooms: 3}

		roomType := req.ToModel("staff-1")

		assert.NotEmpty(t, roomType.ID)
		assert.Equal(t, "deluxe-king", roomType.Slug)
		assert.Equal(t, "Deluxe", roomType.Name)
		assert.True(t, roomType.Active)
		assert.Equal(t, pq.StringArray{}, roomType.Amenities)
		assert.Equal(t, "staff-1", roomType.CreatedBy)
	})

	t.Run("slug from name", func(t *testing.T) {
		req := dto.CreateRoomTypeRequest{Name: "Garden Villa"}

		assert.Equal(t, "garden-villa", req.ToModel("staff-1").Slug)
	})
}

func TestUpdateRoomTypeRequest_IsEmpty(t *testing.T) {
	active := false

	assert.True(t, dto.UpdateRoomTypeRequest{}.IsEmpty())
	assert.False(t, dto.UpdateRoomTypeRequest{Active: &active}.IsEmpty())
	assert.False(t, dto.UpdateRoomTypeRequest{Images: pq.StringArray{}}.IsEmpty())
}

func TestRoomTypeResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	roomType := model.RoomType{
		ID:            "rt-1",
		Slug:          "deluxe",
		Name:          "Deluxe",
		MaxAdults:     2,
		MaxChildren:   1,
		MaxGuests:     3,
		TotalRooms:    5,
		PricePerNight: 950000,
		Active:        true,
		Metadata:      gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "staff-1", ModifiedBy: "staff-1"},
	}

	var res dto.RoomTypeResponse
	res.FromModel(roomType)

	assert.Equal(t, "deluxe", res.Slug)
	assert.Equal(t, 3, res.MaxGuests)
	assert.InDelta(t, 950000, res.PricePerNight, 0.001)
	assert.Equal(t, []string{}, res.Amenities)
	assert.Equal(t, []string{}, res.Images)
	assert.Equal(t, "staff-1", res.CreatedBy)
}

func TestGetRoomTypesResponse_FromModels(t *testing.T) {
	var res dto.GetRoomTypesResponse
	res.FromModels([]model.RoomType{{ID: "a"}, {ID: "b"}, {ID: "c"}}, 25, 10)

	assert.Equal(t, 25, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.RoomTypes, 3)
}

func TestListFilter(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantErr    bool
		wantActive bool
		wantFields int
	}{
		{name: "defaults to active", query: "", wantActive: true, wantFields: 1},
		{name: "inactive with search", query: "active=false&search=suite", wantActive: false, wantFields: 2},
		{name: "guest capacity", query: "guests=3", wantActive: true, wantFields: 2},
		{name: "invalid guests", query: "guests=none", wantErr: true},
		{name: "zero guests", query: "guests=0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var filter dto.ListFilter

			err := filter.FromRequest(httptest.NewRequest("GET", "/v1/room-types?"+tt.query, nil))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantActive, filter.Active)
			assert.Len(t, filter.ToFilterGroup().Filters, tt.wantFields)
		})
	}
}

func TestListFilter_GuestsClause(t *testing.T) {
	guests := 3
	filter := dto.ListFilter{Active: true, MinGuests: &guests}
	group := filter.ToFilterGroup()

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "room_types.max_guests >= :max_guests")
	assert.Equal(t, 3, args["max_guests"])
}
