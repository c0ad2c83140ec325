package model

import "hotel/shared/model"

const (
	TableName  = "addons"
	EntityName = "addon"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldActive      = "active"
)

// Addon is an extra service a guest can book on top of the room.
type Addon struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Active      bool    `db:"active"`
	model.Metadata
}
