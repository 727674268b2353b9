package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/tempwifiaccess/model"
	"link/internal/scope"
	"link/shared"
	gRepo "link/shared/repository"
)

type TempWifiAccess interface {
	Insert(ctx context.Context, model model.TempWifiAccess) (int64, error)
	Get(ctx context.Context, id int64) (model.TempWifiAccess, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.TempWifiAccess]
}

func New(db *postgres.Connection, otel otel.Otel) TempWifiAccess {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.TempWifiAccess](scope.TableTempWifiAccess, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, access model.TempWifiAccess) (int64, error) {
	columns, values := access.Columns()

	return r.repo.Insert(ctx, columns, values)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.TempWifiAccess, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, patch model.Patch) error {
	names, values := patch.Candidates()

	return r.repo.Update(ctx, id, names, values)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}
