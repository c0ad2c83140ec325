package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID            = "id"
	FieldSlug          = "slug"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldMaxAdults     = "max_adults"
	FieldMaxChildren   = "max_children"
	FieldMaxGuests     = "max_guests"
	FieldTotalRooms    = "total_rooms"
	FieldPricePerNight = "price_per_night"
	FieldAmenities     = "amenities"
	FieldImages        = "images"
	FieldActive        = "active"
)

type RoomType struct {
	ID            string         `db:"id"`
	Slug          string         `db:"slug"`
	Name          string         `db:"name"`
	Description   string         `db:"description"`
	MaxAdults     int            `db:"max_adults"`
	MaxChildren   int            `db:"max_children"`
	MaxGuests     int            `db:"max_guests"`
	TotalRooms    int            `db:"total_rooms"`
	PricePerNight float64        `db:"price_per_night"`
	Amenities     pq.StringArray `db:"amenities"`
	Images        pq.StringArray `db:"images"`
	Active        bool           `db:"active"`
	model.Metadata
}
