package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipKey = SkipAuthKey("skip")

// Auth authenticates callers, either by bearer token or by service API key.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role authorizes an authenticated caller for the matched route.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	table      *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		table:      permissions,
		cfg:        cfg,
	}
}

var tokenFailures = []struct {
	target  error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

func tokenFailure(err error) error {
	for _, candidate := range tokenFailures {
		if errors.Is(err, candidate.target) {
			return failure.Unauthorized(candidate.message)
		}
	}

	return failure.Unauthorized("Token validation failed")
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

// lookup returns the permission entry for the request's route pattern.
func (m *authRoleImpl) lookup(request *http.Request) (permissions.Permission, bool) {
	if m.table == nil {
		return permissions.Permission{}, false
	}

	return m.table.FindPermissions(routePattern(request), request.Method)
}

// Auth validates the bearer access token unless the route is public or the
// request already passed the API key check. Public routes marked optional
// resolve a token when one is sent and pass anonymous callers through.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		if skipped(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		header := request.Header.Get(constant.RequestHeaderAuthorization)

		if entry, _ := m.lookup(request); entry.Skip && (!entry.Optional || header == constant.Empty) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       routePattern(request),
			"http.method":     request.Method,
		})

		claims, err := m.authenticate(request, header)
		if err != nil {
			deny(writer, scope, err)

			return
		}

		next.ServeHTTP(writer, request.WithContext(withClaims(ctx, claims)))
	})
}

func (m *authRoleImpl) authenticate(request *http.Request, header string) (*jwt.Claims, error) {
	if header == constant.Empty {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(request.Context(), token, jwt.AccessToken)
	if err != nil {
		return nil, tokenFailure(err)
	}

	if claims.UserID == constant.Empty || claims.Email == constant.Empty {
		log.Error().Str("user_id", claims.UserID).Msg("access token without identity")

		return nil, failure.Unauthorized("Invalid token claims")
	}

	return claims, nil
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	for key, value := range map[any]string{
		constant.ContextKeyUserID:    claims.UserID,
		constant.ContextKeyUserEmail: claims.Email,
		constant.ContextKeyUserRole:  claims.Role,
		constant.ContextKeyTokenID:   claims.TokenID,
	} {
		ctx = context.WithValue(ctx, key, value)
	}

	return ctx
}

// RBAC checks the caller's role against the route's allowed roles. Routes
// missing from the permission table are refused.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		switch {
		case skipped(ctx):
			next.ServeHTTP(writer, request)

			return
		case m.table == nil:
			response.WithError(writer, failure.ForbiddenError)

			return
		case m.table.Skip:
			next.ServeHTTP(writer, request)

			return
		}

		entry, found := m.lookup(request)
		if found && entry.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if found && entry.Allows(role) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"user_role":     role,
			"allowed_roles": entry.Permissions,
			"reason":        "role_not_allowed",
		})
		deny(writer, scope, failure.ForbiddenError)
	})
}

// APIKey authenticates service-to-service callers such as the payment
// gateway. A key is only honoured on routes flagged api_key in the
// permission table.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		presented := request.Header.Get(constant.RequestHeaderAPIKey)
		if presented == constant.Empty {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		entry, _ := m.lookup(request)
		if !entry.APIKey || !m.keyMatches(presented) {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(ctx, skipKey, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ServiceUser)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) keyMatches(presented string) bool {
	expected := m.cfg.App.APIKey
	if expected == constant.Empty {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}

func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipKey).(bool)

	return skip
}

// routePattern resolves the registered chi pattern, e.g. /v1/bookings/{id},
// for the request path. Subrouter roots resolve with a trailing slash, which
// is dropped.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	return pattern
}
