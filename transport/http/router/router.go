package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/yamanfurkan353-eng/lumina/internal/handlers/auth"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/customer"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/dashboard"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/export"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/reservation"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/room"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/setting"
	"github.com/yamanfurkan353-eng/lumina/internal/handlers/user"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Room        room.Handler
	Customer    customer.Handler
	Reservation reservation.Handler
	Setting     setting.Handler
	Dashboard   dashboard.Handler
	Export      export.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Export.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
