package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/credential/model"
	"link/internal/scope"
	"link/shared"
	gRepo "link/shared/repository"
)

// Credential writes password rows to the base table and reads the ones
// visible to the request.
type Credential interface {
	Insert(ctx context.Context, credential model.NewCredential) (int64, error)
	Get(ctx context.Context, id int64) (model.Credential, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Credential]
}

func New(db *postgres.Connection, otel otel.Otel) Credential {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Credential](scope.TableCredential, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, credential model.NewCredential) (int64, error) {
	columns, values := credential.Columns()

	return r.repo.Insert(ctx, columns, values)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Credential, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, patch model.Patch) error {
	names, values := patch.Candidates()

	return r.repo.Update(ctx, id, names, values)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}
