package model

type Type string

const (
	TypeBookingConfirmed Type = "booking_confirmed"
	TypeBookingCancelled Type = "booking_cancelled"
)

// BookingNotification is the payload the mailer renders into a guest email.
type BookingNotification struct {
	Type         Type    `json:"type"`
	BookingID    string  `json:"booking_id"`
	Reference    string  `json:"reference"`
	GuestName    string  `json:"guest_name"`
	GuestEmail   string  `json:"guest_email"`
	RoomTypeName string  `json:"room_type_name"`
	RoomNumber   string  `json:"room_number,omitempty"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Nights       int     `json:"nights"`
	TotalAmount  float64 `json:"total_amount"`
	Reason       string  `json:"reason,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
