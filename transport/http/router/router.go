package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"link/internal/handlers/building"
	"link/internal/handlers/company"
	"link/internal/handlers/credential"
	"link/internal/handlers/employee"
	"link/internal/handlers/room"
	"link/internal/handlers/visitorpackage"
	"link/transport/http/middleware"
)

type DomainHandlers struct {
	Company        company.Handler
	Credential     credential.Handler
	Building       building.Handler
	Employee       employee.Handler
	Room           room.Handler
	VisitorPackage visitorpackage.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Scope          middleware.Scope
}

// SetupRoutes mounts /v1. Every permitted /v1 request runs inside its own
// scoped view set, opened by Isolate and torn down when the handler returns.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Scope.Authenticate, r.Scope.Permit, r.Scope.Isolate)

		r.DomainHandlers.Company.Router(routerGroup)
		r.DomainHandlers.Credential.Router(routerGroup)
		r.DomainHandlers.Building.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.VisitorPackage.Router(routerGroup)
	})
}

// Middlewares run ahead of every route, /health included.
func (r *Router) Middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		r.App.RequestID,
		r.App.Tracing,
		r.App.RateLimit(),
	}
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, scope middleware.Scope) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Scope:          scope,
	}
}
