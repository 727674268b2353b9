package scope

import (
	"time"

	"link/infras/otel"
	"link/infras/postgres"
)

func NewMaterializerWithSuffix(db *postgres.Connection, store Store, ledger Ledger, otel otel.Otel, suffix string) Materializer {
	return &materializerImpl{
		db:     db,
		store:  store,
		ledger: ledger,
		otel:   otel,
		suffix: func() (string, error) { return suffix, nil },
	}
}

func SetSweeperClock(s *Sweeper, now func() time.Time) {
	s.now = now
}
