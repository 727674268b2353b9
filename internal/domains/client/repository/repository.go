package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/client/model"
	"link/internal/scope"
	"link/shared"
	gRepo "link/shared/repository"
)

type Client interface {
	Insert(ctx context.Context, model model.Client) (int64, error)
	Get(ctx context.Context, id int64) (model.Client, error)
	GetByMacAddress(ctx context.Context, macAddress string) (model.Client, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Client]
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Client](scope.TableClient, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, client model.Client) (int64, error) {
	columns, values := client.Columns()

	return r.repo.Insert(ctx, columns, values)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Client, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}

func (r *repositoryImpl) GetByMacAddress(ctx context.Context, macAddress string) (model.Client, error) {
	return r.repo.Get(ctx, shared.FilterByField(model.FieldMacAddress, macAddress))
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, patch model.Patch) error {
	names, values := patch.Candidates()

	return r.repo.Update(ctx, id, names, values)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}
