package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/wifiparams/model"
	"link/internal/scope"
	"link/shared"
	gRepo "link/shared/repository"
)

type WifiParams interface {
	Insert(ctx context.Context, model model.WifiParams) (int64, error)
	Get(ctx context.Context, id int64) (model.WifiParams, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.WifiParams]
}

func New(db *postgres.Connection, otel otel.Otel) WifiParams {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.WifiParams](scope.TableWifiParams, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, params model.WifiParams) (int64, error) {
	columns, values := params.Columns()

	return r.repo.Insert(ctx, columns, values)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.WifiParams, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, patch model.Patch) error {
	names, values := patch.Candidates()

	return r.repo.Update(ctx, id, names, values)
}
