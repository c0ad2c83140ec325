package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	GuestName  string   `json:"guest_name"  validate:"required,max=20"`
	GuestEmail string   `json:"guest_email" validate:"required,email"`
	CheckIn    string   `json:"check_in"    validate:"required,datetime=2006-01-02"`
	Guests     int      `json:"guests"      validate:"min=1"`
	ServiceIDs []string `json:"service_ids" validate:"omitempty,dive,uuid"`
	Source     string   `json:"source"      validate:"omitempty,oneof=website walk_in"`
}

type uploadRequest struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

func validBooking() bookingRequest {
	return bookingRequest{
		GuestName:  "Ayu Lestari",
		GuestEmail: "ayu@example.com",
		CheckIn:    "2026-11-01",
		Guests:     2,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*bookingRequest)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(*bookingRequest) {},
		},
		{
			name:    "required uses json name",
			mutate:  func(r *bookingRequest) { r.GuestName = "" },
			wantMsg: "guest_name is required",
		},
		{
			name:    "email",
			mutate:  func(r *bookingRequest) { r.GuestEmail = "ayu.example.com" },
			wantMsg: "guest_email must be a valid email address",
		},
		{
			name:    "date layout",
			mutate:  func(r *bookingRequest) { r.CheckIn = "01/11/2026" },
			wantMsg: "check_in must be a date in the format 2006-01-02",
		},
		{
			name:    "minimum guests",
			mutate:  func(r *bookingRequest) { r.Guests = 0 },
			wantMsg: "guests must be at least 1",
		},
		{
			name:    "slice element keeps its index",
			mutate:  func(r *bookingRequest) { r.ServiceIDs = []string{"7f8c1d2e-4b5a-4c3d-9e8f-0a1b2c3d4e5f", "spa"} },
			wantMsg: "service_ids[1] must be a valid UUID",
		},
		{
			name:    "oneof lists choices",
			mutate:  func(r *bookingRequest) { r.Source = "fax" },
			wantMsg: "source must be one of [website walk_in]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"guest_name":"Ayu","guest_email":"ayu@example.com","check_in":"2026-11-01","guests":2,"unknown":true}`,
		},
		{
			name:    "malformed json",
			body:    `{"guest_name":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: "guest_name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req bookingRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, 2, req.Guests)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUploadValidation(t *testing.T) {
	const mb = 1024 * 1024

	file := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "deluxe.png",
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
			Size:     size,
		}
	}

	tests := []struct {
		name    string
		image   *multipart.FileHeader
		wantMsg string
	}{
		{name: "png within limit", image: file("image/png", 2*mb)},
		{name: "exactly the limit", image: file("image/jpeg", 5*mb)},
		{name: "missing", image: nil, wantMsg: "image is required"},
		{name: "wrong type", image: file("application/pdf", mb), wantMsg: "image must be one of the types [image/png image/jpeg]"},
		{name: "too large", image: file("image/png", 5*mb+1), wantMsg: "image must not exceed 5 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadRequest{Image: tt.image})
			if tt.wantMsg == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	require.NoError(t, validator.ValidateVar("front.desk@example.com", "required,email"))

	err := validator.ValidateVar("front desk", "email")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
