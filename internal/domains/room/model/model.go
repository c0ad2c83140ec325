package model

import (
	"slices"

	"hotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldFloor        = "floor"
	FieldRoomTypeID   = "room_type_id"
	FieldRoomTypeSlug = "room_type_slug"
	FieldRoomTypeName = "room_type_name"
	FieldStatus       = "status"
	FieldNotes        = "notes"
	FieldActive       = "active"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusReserved    Status = "reserved"
)

// manualTransitions are the status changes staff may make by hand. Occupied
// is owned by the allocator.
var manualTransitions = map[Status][]Status{
	StatusAvailable:   {StatusMaintenance, StatusReserved},
	StatusMaintenance: {StatusAvailable},
	StatusReserved:    {StatusAvailable},
	StatusOccupied:    {},
}

func (s Status) Valid() bool {
	_, ok := manualTransitions[s]

	return ok
}

func (s Status) CanSetManually(next Status) bool {
	return slices.Contains(manualTransitions[s], next)
}

// Room snapshots the room type slug and name at write time; they are not
// refreshed when the room type is renamed.
type Room struct {
	ID           string `db:"id"`
	RoomNumber   string `db:"room_number"`
	Floor        int    `db:"floor"`
	RoomTypeID   string `db:"room_type_id"`
	RoomTypeSlug string `db:"room_type_slug"`
	RoomTypeName string `db:"room_type_name"`
	Status       Status `db:"status"`
	Notes        string `db:"notes"`
	Active       bool   `db:"active"`
	model.Metadata
}

// Availability is the per room type inventory summary.
type Availability struct {
	RoomTypeID     string `db:"room_type_id"`
	RoomTypeSlug   string `db:"room_type_slug"`
	RoomTypeName   string `db:"room_type_name"`
	TotalRooms     int    `db:"total_rooms"`
	ActiveRooms    int    `db:"active_rooms"`
	AvailableRooms int    `db:"available_rooms"`
}

func (a Availability) Remaining() int {
	return max(a.TotalRooms-a.ActiveRooms, 0)
}
