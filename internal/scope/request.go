package scope

import (
	"context"
	"errors"
	"time"

	"link/shared/constant"
	"link/shared/failure"
)

// Kind classifies the permission boundary of a request.
type Kind int

const (
	KindOpen Kind = iota + 1
	KindCompany
)

func (k Kind) String() string {
	switch k {
	case KindCompany:
		return constant.ScopeKindCompany
	case KindOpen:
		return constant.ScopeKindOpen
	default:
		return "unknown"
	}
}

// Scope is the resolved permission boundary. CompanyID is only meaningful
// for KindCompany.
type Scope struct {
	Kind         Kind
	CredentialID int64
	CompanyID    int64
}

// CompanyScope restricts visibility to one company's chain of rows.
func CompanyScope(credentialID, companyID int64) Scope {
	return Scope{Kind: KindCompany, CredentialID: credentialID, CompanyID: companyID}
}

// OpenScope grants unfiltered visibility.
func OpenScope(credentialID int64) Scope {
	return Scope{Kind: KindOpen, CredentialID: credentialID}
}

// Request is the immutable per-request state produced by materialization.
type Request struct {
	scope     Scope
	suffix    string
	registry  Registry
	createdAt time.Time
}

// NewRequest builds a Request whose views for the given tables (all tables
// when none are given) are assumed to exist already.
func NewRequest(s Scope, suffix string, only ...Table) *Request {
	if len(only) == 0 {
		only = Tables()
	}

	req := &Request{scope: s, suffix: suffix}
	for _, table := range only {
		req.registry.register(table, ViewName(table, s.CredentialID, suffix))
	}

	return req
}

func (r *Request) Scope() Scope {
	return r.scope
}

func (r *Request) Suffix() string {
	return r.suffix
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// View returns the concrete view name for table.
func (r *Request) View(table Table) (string, error) {
	return r.registry.Lookup(table)
}

// Created lists the views that exist for this request, in creation order.
func (r *Request) Created() []string {
	if r == nil {
		return nil
	}

	return r.registry.Created()
}

type (
	requestKey struct{}
	scopeKey   struct{}
)

var errNoRequest = errors.New("no scoped request on context")

// WithScope returns a copy of ctx carrying the resolved scope, before any
// view exists for it.
func WithScope(ctx context.Context, s Scope) context.Context {
	ctx = context.WithValue(ctx, scopeKey{}, s)
	ctx = context.WithValue(ctx, constant.ContextKeyCredentialID, s.CredentialID)

	return context.WithValue(ctx, constant.ContextKeyScopeKind, s.Kind.String())
}

// ScopeFromContext returns the scope resolved for ctx, if any.
func ScopeFromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)

	return s, ok
}

// WithRequest returns a copy of ctx carrying req and its scope.
func WithRequest(ctx context.Context, req *Request) context.Context {
	return context.WithValue(WithScope(ctx, req.scope), requestKey{}, req)
}

// FromContext returns the request carried on ctx.
func FromContext(ctx context.Context) (*Request, error) {
	req, ok := ctx.Value(requestKey{}).(*Request)
	if !ok || req == nil {
		return nil, failure.InternalError(errNoRequest)
	}

	return req, nil
}

// View resolves table against the request carried on ctx.
func View(ctx context.Context, table Table) (string, error) {
	req, err := FromContext(ctx)
	if err != nil {
		return "", err
	}

	return req.View(table)
}
