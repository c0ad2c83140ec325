package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldGuestFirstName   = "guest_first_name"
	FieldGuestLastName    = "guest_last_name"
	FieldGuestEmail       = "guest_email"
	FieldGuestPhone       = "guest_phone"
	FieldGuestCountry     = "guest_country"
	FieldRoomTypeSlug     = "room_type_slug"
	FieldRoomTypeName     = "room_type_name"
	FieldRoomNumber       = "room_number"
	FieldRoomID           = "room_id"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldNights           = "nights"
	FieldTotalAmount      = "total_amount"
	FieldBookingStatus    = "booking_status"
	FieldPaymentStatus    = "payment_status"
	FieldPaymentReference = "payment_reference"
	FieldSource           = "source"
	FieldCancelReason     = "cancellation_reason"
	FieldCancelledAt      = "cancelled_at"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// transitions lists every booking status change allowed outside of a no-op.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusCheckedIn, BookingStatusCancelled, BookingStatusPending},
	BookingStatusCheckedIn:  {BookingStatusCheckedOut},
	BookingStatusCheckedOut: {},
	BookingStatusCancelled:  {},
}

func (s BookingStatus) Valid() bool {
	_, ok := transitions[s]

	return ok
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return slices.Contains(transitions[s], next)
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled
}

// HoldsRoom reports whether a booking in this status keeps a physical room occupied.
func (s BookingStatus) HoldsRoom() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCheckedIn
}

// Active statuses are the ones counted as "expiring" on checkout day.
func ActiveStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusConfirmed, BookingStatusCheckedIn}
}

func BookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
		BookingStatusCheckedOut,
		BookingStatusCancelled,
	}
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

type Source string

const (
	SourceWebsite Source = "website"
	SourceWalkIn  Source = "walk_in"
	SourceAgent   Source = "agent"
	SourcePhone   Source = "phone"
)

func (s Source) Valid() bool {
	switch s {
	case SourceWebsite, SourceWalkIn, SourceAgent, SourcePhone:
		return true
	default:
		return false
	}
}

type ServiceItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceItems is stored as a JSONB array of name/price snapshots.
type ServiceItems []ServiceItem

func (s ServiceItems) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal service items: %w", err)
	}

	return data, nil
}

func (s *ServiceItems) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		*s = ServiceItems{}

		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for service items")
	}

	return json.Unmarshal(data, s)
}

func (s ServiceItems) Total() float64 {
	total := 0.0
	for _, item := range s {
		total += item.Price
	}

	return total
}

type Booking struct {
	ID                 string        `db:"id"`
	GuestFirstName     string        `db:"guest_first_name"`
	GuestLastName      string        `db:"guest_last_name"`
	GuestEmail         string        `db:"guest_email"`
	GuestPhone         string        `db:"guest_phone"`
	GuestCountry       string        `db:"guest_country"`
	RoomTypeSlug       string        `db:"room_type_slug"`
	RoomTypeName       string        `db:"room_type_name"`
	RoomCount          int           `db:"room_count"`
	RoomID             *string       `db:"room_id"`
	RoomNumber         *string       `db:"room_number"`
	CheckIn            time.Time     `db:"check_in"`
	CheckOut           time.Time     `db:"check_out"`
	Nights             int           `db:"nights"`
	Adults             int           `db:"adults"`
	Children           int           `db:"children"`
	TotalGuests        int           `db:"total_guests"`
	PricePerNight      float64       `db:"price_per_night"`
	TotalAmount        float64       `db:"total_amount"`
	Services           ServiceItems  `db:"services"`
	PaymentStatus      PaymentStatus `db:"payment_status"`
	BookingStatus      BookingStatus `db:"booking_status"`
	Source             Source        `db:"source"`
	PaymentReference   *string       `db:"payment_reference"`
	SpecialRequests    *string       `db:"special_requests"`
	CancellationReason *string       `db:"cancellation_reason"`
	CancelledAt        *time.Time    `db:"cancelled_at"`
	model.Metadata
}

func (b Booking) GuestName() string {
	return b.GuestFirstName + " " + b.GuestLastName
}

func (b Booking) HasRoom() bool {
	return b.RoomNumber != nil && *b.RoomNumber != ""
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	BookingStatus BookingStatus `db:"booking_status"`
	Count         int           `db:"count"`
	Revenue       float64       `db:"revenue"`
}

type Stats struct {
	ByStatus      []StatusCount
	ExpiringToday int
	TotalBookings int
	TotalRevenue  float64
}
