package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/tpa/model"
	"link/internal/scope"
	"link/shared"
	gRepo "link/shared/repository"
)

type TPA interface {
	Insert(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int64) (model.TPA, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.TPA]
}

func New(db *postgres.Connection, otel otel.Otel) TPA {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.TPA](scope.TableTPA, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context) (int64, error) {
	return r.repo.InsertDefaults(ctx)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.TPA, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}
