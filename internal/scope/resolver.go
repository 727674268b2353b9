package scope

//go:generate go run go.uber.org/mock/mockgen -source=./resolver.go -destination=./mocks/resolver_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"link/config"
	"link/infras/otel"
	"link/shared/constant"
	"link/shared/failure"
)

// BootstrapToken is the marker for unauthenticated bootstrap access.
const BootstrapToken = ""

const (
	messageInvalidToken      = "Invalid API key"
	messageUnboundCredential = "Credential is not bound to a company or employee"
)

// Resolver maps a credential token to a scope.
type Resolver interface {
	Resolve(ctx context.Context, token string) (Scope, error)
}

type resolverImpl struct {
	store Store
	cfg   *config.Config
	otel  otel.Otel
}

func NewResolver(store Store, cfg *config.Config, otel otel.Otel) Resolver {
	return &resolverImpl{
		store: store,
		cfg:   cfg,
		otel:  otel,
	}
}

// Resolve returns OpenScope for the bootstrap token and for credentials bound
// to an employee, and CompanyScope for company credentials.
func (r *resolverImpl) Resolve(ctx context.Context, token string) (s Scope, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if token == BootstrapToken {
		if !r.cfg.Scope.AllowBootstrap {
			return s, failure.AuthFailure(messageInvalidToken)
		}

		log.Debug().Msg("bootstrap token, granting open scope")

		return OpenScope(0), nil
	}

	credentialID, err := r.store.CredentialByAPIKey(ctx, token)
	if failure.IsKind(err, failure.KindNotFound) {
		return s, failure.AuthFailure(messageInvalidToken)
	}

	if err != nil {
		return s, fmt.Errorf("failed to look up credential: %w", err)
	}

	bound, err := r.store.EmployeeBound(ctx, credentialID)
	if err != nil {
		return s, fmt.Errorf("failed to check employee credential: %w", err)
	}

	// Employee credentials see everything and company credentials are
	// filtered. Kept as observed until product owners decide otherwise.
	if bound {
		return OpenScope(credentialID), nil
	}

	companyID, err := r.store.CompanyByCredential(ctx, credentialID)
	if failure.IsKind(err, failure.KindNotFound) {
		log.Warn().Int64("credentialId", credentialID).Msg("credential bound to neither company nor employee")

		return s, failure.AuthFailure(messageUnboundCredential)
	}

	if err != nil {
		return s, fmt.Errorf("failed to look up company: %w", err)
	}

	scope.SetAttribute("scope.company_id", int(companyID))

	return CompanyScope(credentialID, companyID), nil
}
