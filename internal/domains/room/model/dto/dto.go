package dto

import (
	"net/http"
	"strings"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
)

const (
	defaultFloor = 1

	QueryParamRoomType = "room_type"
	queryParamStatus   = "status"
	queryParamFloor    = "floor"
	queryParamActive   = "active"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number"  validate:"required,max=20"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Floor      *int   `json:"floor"        validate:"omitempty,min=0"`
	Notes      string `json:"notes"        validate:"omitempty,max=1000"`
}

// RoomTypeSnapshot is the part of a room type copied onto a room at creation.
type RoomTypeSnapshot struct {
	ID   string
	Slug string
	Name string
}

func (c *CreateRoomRequest) ToModel(user string, roomType RoomTypeSnapshot) model.Room {
	roomNumber := strings.TrimSpace(c.RoomNumber)

	floor := FloorFromRoomNumber(roomNumber)
	if c.Floor != nil {
		floor = *c.Floor
	}

	return model.Room{
		ID:           uuid.NewString(),
		RoomNumber:   roomNumber,
		Floor:        floor,
		RoomTypeID:   roomType.ID,
		RoomTypeSlug: roomType.Slug,
		RoomTypeName: roomType.Name,
		Status:       model.StatusAvailable,
		Notes:        c.Notes,
		Active:       true,
		Metadata:     gModel.NewMetadata(user),
	}
}

// FloorFromRoomNumber reads the floor from the leading digit of the room
// number. A leading zero or a non-digit yields the ground floor default of 1.
func FloorFromRoomNumber(roomNumber string) int {
	if roomNumber == constant.Empty {
		return defaultFloor
	}

	first := roomNumber[0]
	if first < '1' || first > '9' {
		return defaultFloor
	}

	return int(first - '0')
}

type UpdateRoomRequest struct {
	Floor *int    `db:"floor" json:"floor" validate:"omitempty,min=0"`
	Notes *string `db:"notes" json:"notes" validate:"omitempty,max=1000"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"room_number"`
	Floor        int    `json:"floor"`
	RoomTypeID   string `json:"room_type_id"`
	RoomTypeSlug string `json:"room_type_slug"`
	RoomTypeName string `json:"room_type_name"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.RoomTypeID = model.RoomTypeID
	r.RoomTypeSlug = model.RoomTypeSlug
	r.RoomTypeName = model.RoomTypeName
	r.Status = string(model.Status)
	r.Notes = model.Notes
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, m := range models {
		r.Rooms[i].FromModel(m)
	}
}

type AvailabilityItem struct {
	RoomTypeID     string `json:"room_type_id"`
	RoomTypeSlug   string `json:"room_type_slug"`
	RoomTypeName   string `json:"room_type_name"`
	TotalRooms     int    `json:"total_rooms"`
	ActiveRooms    int    `json:"active_rooms"`
	AvailableRooms int    `json:"available_rooms"`
	Remaining      int    `json:"remaining"`
}

type AvailabilityResponse struct {
	RoomTypes []AvailabilityItem `json:"room_types"`
}

func (r *AvailabilityResponse) FromModels(models []model.Availability) {
	r.RoomTypes = make([]AvailabilityItem, len(models))
	for i, m := range models {
		r.RoomTypes[i] = AvailabilityItem{
			RoomTypeID:     m.RoomTypeID,
			RoomTypeSlug:   m.RoomTypeSlug,
			RoomTypeName:   m.RoomTypeName,
			TotalRooms:     m.TotalRooms,
			ActiveRooms:    m.ActiveRooms,
			AvailableRooms: m.AvailableRooms,
			Remaining:      m.Remaining(),
		}
	}
}

// ListFilter carries the listRooms query string. Active defaults to true.
type ListFilter struct {
	RoomType string
	Status   string
	Floor    *int
	Active   bool
	Search   string
}

func (f *ListFilter) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	f.RoomType = query.Get(QueryParamRoomType)
	f.Status = query.Get(queryParamStatus)
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))
	f.Active = true

	if active := shared.ConvertStringToBool(query.Get(queryParamActive)); active != nil {
		f.Active = *active
	}

	if floor := query.Get(queryParamFloor); floor != constant.Empty {
		value, err := shared.ConvertStringToInt(floor)
		if err != nil {
			return failure.BadRequestFromString("floor must be a number") // nolint:wrapcheck
		}

		f.Floor = &value
	}

	if f.Status != constant.Empty && !model.Status(f.Status).Valid() {
		return failure.BadRequestFromString("invalid status filter") // nolint:wrapcheck
	}

	return nil
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: f.Active, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if f.RoomType != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldRoomTypeSlug, Value: f.RoomType, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Status != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Floor != nil {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldFloor, Value: *f.Floor, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Search != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldRoomNumber, Value: f.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	return group
}
