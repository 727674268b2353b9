package scope

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"link/config"
	"link/infras/otel"
	"link/shared/constant"
	"link/shared/logger"
)

// Manager ties resolution, materialization and teardown to the lifetime of
// one request.
type Manager interface {
	// Resolve maps token to its scope without creating any view.
	Resolve(ctx context.Context, token string) (Scope, error)
	// Enter materializes the views for s. The release func tears them down and
	// may be called more than once.
	Enter(ctx context.Context, s Scope) (*Request, func(), error)
	// Open is Resolve followed by Enter.
	Open(ctx context.Context, token string) (*Request, func(), error)
	// Run calls fn with the request on ctx and tears down on every exit path,
	// including a panic in fn.
	Run(ctx context.Context, token string, fn func(ctx context.Context) error) error
}

type managerImpl struct {
	resolver     Resolver
	materializer Materializer
	teardowner   Teardowner
	otel         otel.Otel
	timeout      time.Duration
}

func NewManager(resolver Resolver, materializer Materializer, teardowner Teardowner, cfg *config.Config, otel otel.Otel) Manager {
	return &managerImpl{
		resolver:     resolver,
		materializer: materializer,
		teardowner:   teardowner,
		otel:         otel,
		timeout:      time.Duration(cfg.Scope.TeardownTimeoutSeconds) * time.Second,
	}
}

func (m *managerImpl) Resolve(ctx context.Context, token string) (s Scope, err error) {
	ctx, span := m.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".Resolve")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	return m.resolver.Resolve(ctx, token)
}

func (m *managerImpl) Enter(ctx context.Context, s Scope) (req *Request, release func(), err error) {
	ctx, span := m.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".Enter")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	req, err = m.materializer.Materialize(ctx, s)
	release = m.releaser(ctx, req)

	if err != nil {
		release()

		return nil, func() {}, err
	}

	return req, release, nil
}

func (m *managerImpl) Open(ctx context.Context, token string) (*Request, func(), error) {
	s, err := m.Resolve(ctx, token)
	if err != nil {
		return nil, func() {}, err
	}

	return m.Enter(ctx, s)
}

func (m *managerImpl) Run(ctx context.Context, token string, fn func(ctx context.Context) error) error {
	req, release, err := m.Open(ctx, token)
	if err != nil {
		return err
	}
	defer release()

	return fn(WithRequest(ctx, req))
}

// releaser tears down on a context detached from ctx's cancellation so a
// cancelled request still drops its views.
func (m *managerImpl) releaser(ctx context.Context, req *Request) func() {
	var once sync.Once

	return func() {
		once.Do(func() {
			if req == nil {
				return
			}

			detached := context.WithoutCancel(ctx)

			if m.timeout > 0 {
				var cancel context.CancelFunc

				detached, cancel = context.WithTimeout(detached, m.timeout)
				defer cancel()
			}

			m.teardowner.Teardown(detached, req)
			logger.FromContext(ctx).Trace().Str("suffix", req.Suffix()).Msg("request released")
		})
	}
}
