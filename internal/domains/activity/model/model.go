package model

import "time"

const (
	CollectionName = "booking_status_events"
	EntityName     = "booking_status_event"

	FieldBookingID = "booking_id"
	FieldAt        = "at"
)

// StatusEvent is one booking or payment status change. Rows are append-only.
type StatusEvent struct {
	ID                string    `bson:"_id"`
	BookingID         string    `bson:"booking_id"`
	FromBookingStatus string    `bson:"from_booking_status"`
	ToBookingStatus   string    `bson:"to_booking_status"`
	FromPaymentStatus string    `bson:"from_payment_status"`
	ToPaymentStatus   string    `bson:"to_payment_status"`
	RoomNumber        string    `bson:"room_number,omitempty"`
	Reason            string    `bson:"reason,omitempty"`
	Actor             string    `bson:"actor"`
	At                time.Time `bson:"at"`
}
