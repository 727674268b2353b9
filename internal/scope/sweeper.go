package scope

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"link/config"
	"link/infras/otel"
	"link/infras/postgres"
	"link/shared/constant"
	"link/shared/timezone"
)

// Sweeper drops views whose request never tore them down.
type Sweeper struct {
	db       *postgres.Connection
	ledger   Ledger
	otel     otel.Otel
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewSweeper(db *postgres.Connection, ledger Ledger, cfg *config.Config, otel otel.Otel) *Sweeper {
	return &Sweeper{
		db:       db,
		ledger:   ledger,
		otel:     otel,
		ttl:      time.Duration(cfg.Scope.ViewTTLSeconds) * time.Second,
		interval: time.Duration(cfg.Scope.SweepIntervalSeconds) * time.Second,
		now:      timezone.Now,
	}
}

// SweepOnce drops every ledger entry older than the view TTL and returns how
// many views were dropped.
func (s *Sweeper) SweepOnce(ctx context.Context) (swept int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".SweepOnce")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	expired, err := s.ledger.Expired(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, err
	}

	dropped := make([]string, 0, len(expired))

	for _, name := range expired {
		// Malformed entries can never be dropped.
		if !IsViewName(name) {
			log.Warn().Str("entry", name).Msg("discarding malformed ledger entry")

			dropped = append(dropped, name)

			continue
		}

		if err := dropView(ctx, s.db, name); err != nil {
			log.Error().Err(err).Str("view", name).Msg("sweeper failed to drop view")

			continue
		}

		dropped = append(dropped, name)
	}

	if err = s.ledger.Forget(ctx, dropped...); err != nil {
		return 0, err
	}

	if len(dropped) > 0 {
		log.Info().Int("views", len(dropped)).Msg("swept orphaned views")
	}

	return len(dropped), nil
}

// Run sweeps on every interval tick until ctx ends.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		log.Warn().Msg("sweep interval not set, sweeper disabled")

		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Dur("ttl", s.ttl).Msg("view sweeper started")

	for {
		if _, err := s.SweepOnce(ctx); err != nil {
			log.Error().Err(err).Msg("view sweep failed")
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("view sweeper stopped")

			return ctx.Err()
		case <-ticker.C:
		}
	}
}
