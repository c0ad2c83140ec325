package roomtype_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/handlers/roomtype"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newRouter(t *testing.T) (*roomTypeMocks.MockRoomTypeService, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := roomTypeMocks.NewMockRoomTypeService(ctrl)
	handler := roomtype.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func imageForm(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="room.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_GetRoomTypes(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectCall  bool
		wantFilters int
		wantStatus  int
	}{
		{name: "defaults to active", query: "", expectCall: true, wantFilters: 1, wantStatus: http.StatusOK},
		{name: "guest capacity and search", query: "?guests=3&search=suite", expectCall: true, wantFilters: 3, wantStatus: http.StatusOK},
		{name: "zero guests", query: "?guests=0", wantStatus: http.StatusBadRequest},
		{name: "guests not a number", query: "?guests=two", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			if tt.expectCall {
				svc.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error) {
						assert.Len(t, filter.Filters, tt.wantFilters)

						return dto.GetRoomTypesResponse{}, nil
					})
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/room-types"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandler_GetRoomTypeBySlug(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		GetBySlug(gomock.Any(), "deluxe-king").
		Return(dto.RoomTypeResponse{}, failure.NotFound("room type"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/room-types/slug/deluxe-king", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_CreateRoomType(t *testing.T) {
	t.Run("max guests required", func(t *testing.T) {
		_, router := newRouter(t)

		body := `{"name":"Deluxe King","max_adults":2,"total_rooms":5,"price_per_night":500000}`

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/room-types", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("slug conflict", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.RoomTypeResponse{}, failure.Conflict("slug already exists"))

		body := `{"name":"Deluxe King","max_adults":2,"max_guests":3,"total_rooms":5,"price_per_night":500000}`

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/room-types", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestHandler_UploadImage(t *testing.T) {
	t.Run("png accepted", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			UploadImage(gomock.Any(), "rt-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, req dto.UploadImageRequest) (dto.UploadImageResponse, error) {
				assert.Equal(t, "room.png", req.Image.Filename)

				return dto.UploadImageResponse{URL: "https://cdn.example.com/room-types/room.png"}, nil
			})

		body, contentType := imageForm(t, "image/png")
		request := httptest.NewRequest(http.MethodPost, "/room-types/rt-1/images", body)
		request.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, router := newRouter(t)

		body, contentType := imageForm(t, "application/pdf")
		request := httptest.NewRequest(http.MethodPost, "/room-types/rt-1/images", body)
		request.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/room-types/rt-1/images", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
