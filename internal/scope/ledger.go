package scope

//go:generate go run go.uber.org/mock/mockgen -source=./ledger.go -destination=./mocks/ledger_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"link/config"
	"link/infras/otel"
	"link/shared/constant"
)

// Ledger remembers which views exist and since when, so views orphaned by a
// crashed process can be swept later.
type Ledger interface {
	Record(ctx context.Context, at time.Time, names ...string) error
	Forget(ctx context.Context, names ...string) error
	Expired(ctx context.Context, before time.Time) ([]string, error)
}

type redisLedger struct {
	client *goRedis.Client
	key    string
	otel   otel.Otel
}

// NewLedger returns a ledger backed by a Redis sorted set scored by creation
// time, or a no-op ledger when disabled.
func NewLedger(client *goRedis.Client, cfg *config.Config, otel otel.Otel) Ledger {
	if !cfg.Scope.EnableLedger {
		log.Warn().Msg("view ledger disabled, orphaned views will not be swept")

		return noopLedger{}
	}

	return &redisLedger{
		client: client,
		key:    cfg.Scope.LedgerKey,
		otel:   otel,
	}
}

func (l *redisLedger) Record(ctx context.Context, at time.Time, names ...string) (err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".ledger.Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(names) == 0 {
		return nil
	}

	members := make([]goRedis.Z, len(names))
	for i, name := range names {
		members[i] = goRedis.Z{Score: float64(at.Unix()), Member: name}
	}

	if err = l.client.ZAdd(ctx, l.key, members...).Err(); err != nil {
		return fmt.Errorf("failed to record views: %w", err)
	}

	return nil
}

func (l *redisLedger) Forget(ctx context.Context, names ...string) (err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".ledger.Forget")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(names) == 0 {
		return nil
	}

	members := make([]any, len(names))
	for i, name := range names {
		members[i] = name
	}

	if err = l.client.ZRem(ctx, l.key, members...).Err(); err != nil {
		return fmt.Errorf("failed to forget views: %w", err)
	}

	return nil
}

func (l *redisLedger) Expired(ctx context.Context, before time.Time) (names []string, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelIsolationScopeName, constant.OtelIsolationScopeName+".ledger.Expired")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	names, err = l.client.ZRangeByScore(ctx, l.key, &goRedis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(before.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list expired views: %w", err)
	}

	return names, nil
}

type noopLedger struct{}

func (noopLedger) Record(context.Context, time.Time, ...string) error { return nil }

func (noopLedger) Forget(context.Context, ...string) error { return nil }

func (noopLedger) Expired(context.Context, time.Time) ([]string, error) { return nil, nil }
