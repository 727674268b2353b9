package scope

//go:generate go run go.uber.org/mock/mockgen -source=./teardown.go -destination=./mocks/teardown_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"link/infras/otel"
	"link/infras/postgres"
	"link/shared/constant"
	"link/shared/logger"
)

// Teardowner drops the views of a finished request.
type Teardowner interface {
	Teardown(ctx context.Context, req *Request)
}

type teardownImpl struct {
	db     *postgres.Connection
	ledger Ledger
	otel   otel.Otel
}

func NewTeardowner(db *postgres.Connection, ledger Ledger, otel otel.Otel) Teardowner {
	return &teardownImpl{
		db:     db,
		ledger: ledger,
		otel:   otel,
	}
}

// Teardown issues one drop per created view. A failed drop is logged and the
// remaining drops still run. Views that could not be dropped stay in the
// ledger for the sweeper.
func (t *teardownImpl) Teardown(ctx context.Context, req *Request) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".Teardown")
	defer scope.End()

	created := req.Created()
	if len(created) == 0 {
		return
	}

	log := logger.FromContext(ctx)
	dropped := make([]string, 0, len(created))

	for _, name := range created {
		if err := dropView(ctx, t.db, name); err != nil {
			scope.TraceError(err)
			logDropFailure(log, name, err)

			continue
		}

		dropped = append(dropped, name)
	}

	if err := t.ledger.Forget(ctx, dropped...); err != nil {
		log.Warn().Err(err).Msg("failed to remove dropped views from ledger")
	}

	log.Debug().Int("dropped", len(dropped)).Int("created", len(created)).Msg("views torn down")
}

func dropView(ctx context.Context, db *postgres.Connection, name string) error {
	if !IsViewName(name) {
		return fmt.Errorf("refusing to drop %q: not a generated view name", name)
	}

	if _, err := db.Write.ExecContext(ctx, "DROP VIEW IF EXISTS "+name); err != nil {
		return fmt.Errorf("failed to drop view %s: %w", name, err)
	}

	return nil
}

func logDropFailure(log *zerolog.Logger, name string, err error) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUndefinedTable {
		log.Debug().Str("view", name).Msg("view already gone")

		return
	}

	log.Error().Err(err).Str("view", name).Msg("failed to drop view")
}
