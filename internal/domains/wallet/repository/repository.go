package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/wallet/model"
	"link/internal/scope"
	"link/shared"
	gRepo "link/shared/repository"
)

type Wallet interface {
	Insert(ctx context.Context, model model.Wallet) (int64, error)
	Get(ctx context.Context, id int64) (model.Wallet, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
	// Spend adds amount to the spent total unless that would pass the
	// wallet's limit. It reports whether the wallet was charged.
	Spend(ctx context.Context, id int64, amount float64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Wallet]
}

func New(db *postgres.Connection, otel otel.Otel) Wallet {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Wallet](scope.TableWallet, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, wallet model.Wallet) (int64, error) {
	columns, values := wallet.Columns()

	return r.repo.Insert(ctx, columns, values)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Wallet, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, patch model.Patch) error {
	names, values := patch.Candidates()

	return r.repo.Update(ctx, id, names, values)
}

func (r *repositoryImpl) Spend(ctx context.Context, id int64, amount float64) (bool, error) {
	return r.repo.IncrementWithin(ctx, id, model.FieldSpent, model.FieldMaxLimit, amount)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}
