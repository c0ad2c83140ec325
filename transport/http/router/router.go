package router

import (
	"hotel/internal/handlers/addon"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/roomtype"
	"hotel/internal/handlers/user"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

const apiPrefix = "/v1"

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Room     room.Handler
	RoomType roomtype.Handler
	Addon    addon.Handler
	Booking  booking.Handler
}

type mounter interface {
	Router(router chi.Router)
}

func (d *DomainHandlers) all() []mounter {
	return []mounter{&d.Auth, &d.User, &d.RoomType, &d.Room, &d.Addon, &d.Booking}
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}

// SetupRoutes mounts every domain under /v1. Access is decided per route
// pattern by the permission table: API key first, then token, then role.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(apiPrefix, func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		for _, handler := range r.DomainHandlers.all() {
			handler.Router(routerGroup)
		}
	})
}
