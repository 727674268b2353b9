package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/visitorpackage/model"
	"link/internal/scope"
	"link/shared"
	gDto "link/shared/dto"
	gRepo "link/shared/repository"
)

type VisitorPackage interface {
	Insert(ctx context.Context, model model.VisitorPackage) (int64, error)
	Get(ctx context.Context, id int64) (model.VisitorPackage, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]model.VisitorPackage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.VisitorPackage, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.VisitorPackage]
}

func New(db *postgres.Connection, otel otel.Otel) VisitorPackage {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.VisitorPackage](scope.TableVisitorPackage, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, pkg model.VisitorPackage) (int64, error) {
	columns, values := pkg.Columns()

	return r.repo.Insert(ctx, columns, values)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.VisitorPackage, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}

func (r *repositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]model.VisitorPackage, error) {
	return r.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(model.FieldEmployeeID, employeeID))
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.VisitorPackage, error) {
	return r.repo.GetAll(ctx, params, filter)
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.repo.Count(ctx, filter)
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, patch model.Patch) error {
	names, values := patch.Candidates()

	return r.repo.Update(ctx, id, names, values)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}
