package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"link/infras/otel"
	"link/internal/scope"
	"link/permissions"
	"link/shared/constant"
	"link/shared/failure"
	"link/transport/http/response"
)

// Scope isolates every request behind its own set of views. The three steps
// run in order: Authenticate, Permit, Isolate. No view is created for a
// request that fails the first two.
type Scope interface {
	// Authenticate resolves the X-API-Key header to a scope.
	Authenticate(next http.Handler) http.Handler
	// Permit rejects routes the resolved scope kind may not call.
	Permit(next http.Handler) http.Handler
	// Isolate materializes the caller's views for the lifetime of the
	// request and drops them afterwards.
	Isolate(next http.Handler) http.Handler
}

var errNoScope = errors.New("isolate called before authenticate")

type scopeImpl struct {
	manager    scope.Manager
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewScopeMiddleware(manager scope.Manager, otel otel.Otel, permission *permissions.PermissionData) Scope {
	return &scopeImpl{
		manager:    manager,
		otel:       otel,
		permission: permission,
	}
}

func (m *scopeImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.skip(request) {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()

		spanCtx, span := m.otel.NewScope(ctx, constant.OtelIsolationScopeName, "scope.authenticate")
		defer span.End()

		s, err := m.manager.Resolve(spanCtx, request.Header.Get(constant.RequestHeaderAPIKey))
		if err != nil {
			span.TraceError(err)
			response.WithError(writer, err)

			return
		}

		span.SetAttributes(map[string]any{
			"scope.kind":          s.Kind.String(),
			"scope.credential_id": s.CredentialID,
		})

		next.ServeHTTP(writer, request.WithContext(scope.WithScope(ctx, s)))
	})
}

func (m *scopeImpl) Isolate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.skip(request) {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()

		s, ok := scope.ScopeFromContext(ctx)
		if !ok {
			response.WithError(writer, failure.InternalError(errNoScope))

			return
		}

		spanCtx, span := m.otel.NewScope(ctx, constant.OtelIsolationScopeName, "scope.isolate")

		req, release, err := m.manager.Enter(spanCtx, s)
		if err != nil {
			span.TraceError(err)
			span.End()
			response.WithError(writer, err)

			return
		}

		defer release()

		span.End()

		next.ServeHTTP(writer, request.WithContext(scope.WithRequest(ctx, req)))
	})
}

func (m *scopeImpl) Permit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.skip(request) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)
		var kind string
		if s, ok := scope.ScopeFromContext(request.Context()); ok {
			kind = s.Kind.String()
		}

		if !permission.Allows(kind) {
			_, span := m.otel.NewScope(request.Context(), constant.OtelIsolationScopeName, "permit.middleware")
			span.SetAttributes(map[string]any{
				"scope.kind":    kind,
				"allowed_kinds": permission.Permissions,
				"reason":        "scope_kind_not_allowed",
			})
			span.TraceError(failure.ForbiddenError)
			span.End()

			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (m *scopeImpl) skip(request *http.Request) bool {
	if m.permission == nil {
		return false
	}

	return m.permission.FindPermissions(routePattern(request), request.Method).Skip
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}
