package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

const validBooking = `{
	"guest_first_name": "Ayu",
	"guest_last_name": "Lestari",
	"guest_email": "ayu@example.com",
	"guest_phone": "+6281234567",
	"guest_country": "Indonesia",
	"room_type_slug": "deluxe-king",
	"room_type_name": "Deluxe King",
	"check_in": "2030-05-01",
	"check_out": "2030-05-03",
	"nights": 2,
	"adults": 2,
	"price_per_night": 500000,
	"total_amount": 1000000
}`

func newRouter(t *testing.T) (*bookingMocks.MockBookingService, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
	}{
		{
			name: "created",
			body: validBooking,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
						assert.Equal(t, "deluxe-king", req.RoomTypeSlug)

						return dto.CreateBookingResponse{ID: "b-1", Reference: "BK-8A7B12CD"}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"guest_first_name":`,
			setupMock:  func(*bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing guest email",
			body:       strings.Replace(validBooking, `"ayu@example.com"`, `""`, 1),
			setupMock:  func(*bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "room type not found",
			body: validBooking,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.CreateBookingResponse{}, failure.NotFound("room type"))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandler_CreateBooking_AnonymousWalkIn(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
			assert.Equal(t, "walk_in", req.Source)
			assert.Equal(t, "checked_in", req.BookingStatus)
			assert.Nil(t, ctx.Value(constant.ContextKeyUserRole))

			return dto.CreateBookingResponse{}, failure.Forbidden("walk-in bookings and status overrides require a staff account")
		})

	body := strings.Replace(validBooking, `"total_amount": 1000000`, `"total_amount": 1000000, "source": "walk_in", "booking_status": "checked_in"`, 1)
	recorder := serve(router, http.MethodPost, "/bookings", body)

	require.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "staff account")
}

func TestHandler_CreateBooking_HidesInternalErrors(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(dto.CreateBookingResponse{}, errors.New("pq: connection refused"))

	recorder := serve(router, http.MethodPost, "/bookings", validBooking)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "pq:")
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodGet, "/bookings?booking_status=lost", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown sort column falls back to the default", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req gDto.QueryParams, _ gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				assert.Equal(t, "bookings.created_at", req.SortBy)

				return dto.GetBookingsResponse{}, nil
			})

		recorder := serve(router, http.MethodGet, "/bookings?sort_by=guest_email", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_LookupBooking(t *testing.T) {
	t.Run("requires reference and email", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodGet, "/bookings/lookup?reference=BK-8A7B12CD", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			Lookup(gomock.Any(), dto.LookupRequest{Reference: "BK-8A7B12CD", Email: "ayu@example.com"}).
			Return(dto.BookingResponse{ID: "b-1"}, nil)

		recorder := serve(router, http.MethodGet, "/bookings/lookup?reference=BK-8A7B12CD&email=Ayu@Example.com", "")

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data dto.BookingResponse `json:"data"`
		}

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "b-1", body.Data.ID)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantReason string
		err        error
		wantStatus int
	}{
		{name: "without body", wantStatus: http.StatusOK},
		{name: "with reason", body: `{"reason":"guest request"}`, wantReason: "guest request", wantStatus: http.StatusOK},
		{name: "already checked out", err: failure.Conflict("cannot cancel a checked_out booking"), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().
				Cancel(gomock.Any(), "b-1", dto.CancelBookingRequest{Reason: tt.wantReason}).
				Return(dto.StatusResponse{ID: "b-1", BookingStatus: "cancelled"}, tt.err)

			recorder := serve(router, http.MethodPost, "/bookings/b-1/cancel", tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodPatch, "/bookings/b-1/status", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			UpdateStatus(gomock.Any(), "b-1", dto.UpdateStatusRequest{Status: "checked_out"}).
			Return(dto.StatusResponse{}, failure.Conflict("cannot move booking from pending to checked_out"))

		recorder := serve(router, http.MethodPatch, "/bookings/b-1/status", `{"status":"checked_out"}`)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestHandler_ConfirmPayment(t *testing.T) {
	t.Run("room assigned", func(t *testing.T) {
		svc, router := newRouter(t)
		room := "305"

		svc.EXPECT().
			ConfirmPayment(gomock.Any(), "b-1", dto.ConfirmPaymentRequest{PaymentReference: "PAY-778"}).
			Return(dto.StatusResponse{ID: "b-1", PaymentStatus: "paid", BookingStatus: "confirmed", RoomNumber: &room}, nil)

		recorder := serve(router, http.MethodPost, "/bookings/b-1/payment/confirm", `{"payment_reference":"PAY-778"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data dto.StatusResponse `json:"data"`
		}

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.NotNil(t, body.Data.RoomNumber)
		assert.Equal(t, "305", *body.Data.RoomNumber)
	})

	t.Run("missing reference", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodPost, "/bookings/b-1/payment/confirm", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			ConfirmPayment(gomock.Any(), "b-1", gomock.Any()).
			Return(dto.StatusResponse{}, failure.Conflict("cannot confirm payment for a cancelled booking"))

		recorder := serve(router, http.MethodPost, "/bookings/b-1/payment/confirm", `{"payment_reference":"PAY-778"}`)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestHandler_UpdatePaymentStatus(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		UpdatePaymentStatus(gomock.Any(), "b-1", dto.UpdatePaymentStatusRequest{PaymentStatus: "refunded"}).
		Return(dto.StatusResponse{ID: "b-1", PaymentStatus: "refunded", BookingStatus: "cancelled"}, nil)

	recorder := serve(router, http.MethodPatch, "/bookings/b-1/payment-status", `{"payment_status":"refunded"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
