package dto

import (
	"hotel/internal/domains/activity/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

// RecordRequest describes one transition as seen by the booking lifecycle.
type RecordRequest struct {
	BookingID         string
	FromBookingStatus string
	ToBookingStatus   string
	FromPaymentStatus string
	ToPaymentStatus   string
	RoomNumber        string
	Reason            string
	Actor             string
}

func (r *RecordRequest) ToModel() model.StatusEvent {
	actor := r.Actor
	if actor == constant.Empty {
		actor = constant.SystemUser
	}

	return model.StatusEvent{
		ID:                uuid.NewString(),
		BookingID:         r.BookingID,
		FromBookingStatus: r.FromBookingStatus,
		ToBookingStatus:   r.ToBookingStatus,
		FromPaymentStatus: r.FromPaymentStatus,
		ToPaymentStatus:   r.ToPaymentStatus,
		RoomNumber:        r.RoomNumber,
		Reason:            r.Reason,
		Actor:             actor,
		At:                timezone.Now(),
	}
}

type StatusEventResponse struct {
	FromBookingStatus string `json:"from_booking_status"`
	ToBookingStatus   string `json:"to_booking_status"`
	FromPaymentStatus string `json:"from_payment_status"`
	ToPaymentStatus   string `json:"to_payment_status"`
	RoomNumber        string `json:"room_number,omitempty"`
	Reason            string `json:"reason,omitempty"`
	Actor             string `json:"actor"`
	At                string `json:"at"`
}

type HistoryResponse struct {
	BookingID string                `json:"booking_id"`
	Events    []StatusEventResponse `json:"events"`
}

func (r *HistoryResponse) FromModels(bookingID string, models []model.StatusEvent) {
	r.BookingID = bookingID
	r.Events = make([]StatusEventResponse, len(models))

	for i, event := range models {
		r.Events[i] = StatusEventResponse{
			FromBookingStatus: event.FromBookingStatus,
			ToBookingStatus:   event.ToBookingStatus,
			FromPaymentStatus: event.FromPaymentStatus,
			ToPaymentStatus:   event.ToPaymentStatus,
			RoomNumber:        event.RoomNumber,
			Reason:            event.Reason,
			Actor:             event.Actor,
			At:                timezone.Format(event.At, constant.DateFormat),
		}
	}
}
