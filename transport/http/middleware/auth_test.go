package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
)

const testAPIKey = "gateway-secret"

func permissionTable() *permissions.PermissionData {
	return &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/bookings", Method: http.MethodPost, Skip: true, Optional: true},
			{Path: "/v1/bookings/lookup", Method: http.MethodGet, Skip: true},
			{Path: "/v1/bookings", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleStaff}},
			{Path: "/v1/bookings/{id}", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleStaff}},
			{Path: "/v1/bookings/{id}/payment/confirm", Method: http.MethodPost, Permissions: []string{constant.RoleAdmin}, APIKey: true},
			{Path: "/v1/users", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin}},
		},
	}
}

func newServer(t *testing.T, table *permissions.PermissionData) (*jwtMocks.MockJWT, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = testAPIKey

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), table, cfg)

	ok := func(writer http.ResponseWriter, request *http.Request) {
		userID, _ := request.Context().Value(constant.ContextKeyUserID).(string)
		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
		writer.Header().Set("X-User", userID)
		writer.Header().Set("X-Role", role)
		writer.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		r.Post("/bookings", ok)
		r.Get("/bookings/lookup", ok)
		r.Get("/bookings", ok)
		r.Get("/bookings/{id}", ok)
		r.Post("/bookings/{id}/payment/confirm", ok)
		r.Get("/users", ok)
		r.Get("/unlisted", ok)
	})

	return jwtService, router
}

func TestAuthRole(t *testing.T) {
	staffClaims := &jwt.Claims{UserID: "u-1", Email: "desk@hotel.test", Role: constant.RoleStaff}

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		apiKey     string
		setupMock  func(m *jwtMocks.MockJWT)
		wantStatus int
		wantUser   string
		wantRole   string
	}{
		{
			name:       "public route without token",
			method:     http.MethodPost,
			path:       "/v1/bookings",
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "public route resolves a staff token",
			method: http.MethodPost,
			path:   "/v1/bookings",
			token:  "Bearer good",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(staffClaims, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "u-1",
			wantRole:   constant.RoleStaff,
		},
		{
			name:   "public route rejects a stale token",
			method: http.MethodPost,
			path:   "/v1/bookings",
			token:  "Bearer expired",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token is ignored where the route does not resolve one",
			method:     http.MethodGet,
			path:       "/v1/bookings/lookup",
			token:      "Bearer good",
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "protected route without token",
			method:     http.MethodGet,
			path:       "/v1/bookings/b-1",
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/bookings/b-1",
			token:  "Bearer expired",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "staff reads a booking",
			method: http.MethodGet,
			path:   "/v1/bookings/b-1",
			token:  "Bearer good",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(staffClaims, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "u-1",
			wantRole:   constant.RoleStaff,
		},
		{
			name:   "subrouter root resolves without trailing slash",
			method: http.MethodGet,
			path:   "/v1/bookings",
			token:  "Bearer good",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(staffClaims, nil)
			},
			wantStatus: http.StatusOK,
			wantRole:   constant.RoleStaff,
		},
		{
			name:   "staff cannot list users",
			method: http.MethodGet,
			path:   "/v1/users",
			token:  "Bearer good",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(staffClaims, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "unlisted route is refused",
			method: http.MethodGet,
			path:   "/v1/unlisted",
			token:  "Bearer good",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(staffClaims, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "api key on flagged route",
			method:     http.MethodPost,
			path:       "/v1/bookings/b-1/payment/confirm",
			apiKey:     testAPIKey,
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
			wantUser:   constant.ServiceUser,
		},
		{
			name:       "wrong api key",
			method:     http.MethodPost,
			path:       "/v1/bookings/b-1/payment/confirm",
			apiKey:     "guess",
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "api key on a route that does not accept it",
			method:     http.MethodGet,
			path:       "/v1/users",
			apiKey:     testAPIKey,
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService, server := newServer(t, permissionTable())
			tt.setupMock(jwtService)

			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.token)
			}

			if tt.apiKey != "" {
				request.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantUser != "" {
				assert.Equal(t, tt.wantUser, recorder.Header().Get("X-User"))
			}

			assert.Equal(t, tt.wantRole, recorder.Header().Get("X-Role"))
		})
	}
}

func TestAuthRole_GlobalSkip(t *testing.T) {
	table := permissionTable()
	table.Skip = true

	jwtService, server := newServer(t, table)
	jwtService.EXPECT().
		ValidateToken(gomock.Any(), "good", jwt.AccessToken).
		Return(&jwt.Claims{UserID: "u-1", Email: "desk@hotel.test", Role: constant.RoleStaff}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
