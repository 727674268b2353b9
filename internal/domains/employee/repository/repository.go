package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/employee/model"
	"link/internal/scope"
	"link/shared"
	gDto "link/shared/dto"
	gRepo "link/shared/repository"
)

type Employee interface {
	Insert(ctx context.Context, model model.Employee) (int64, error)
	Get(ctx context.Context, id int64) (model.Employee, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]model.Employee, error)
	GetByBuildingID(ctx context.Context, buildingID int64) ([]model.Employee, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Employee, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Employee]
}

func New(db *postgres.Connection, otel otel.Otel) Employee {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Employee](scope.TableEmployee, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, employee model.Employee) (int64, error) {
	columns, values := employee.Columns()

	return r.repo.Insert(ctx, columns, values)
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Employee, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
}

func (r *repositoryImpl) GetByCompanyID(ctx context.Context, companyID int64) ([]model.Employee, error) {
	return r.repo.Find(ctx, shared.FilterByField(model.FieldCompanyID, companyID))
}

func (r *repositoryImpl) GetByBuildingID(ctx context.Context, buildingID int64) ([]model.Employee, error) {
	return r.repo.Find(ctx, shared.FilterByField(model.FieldBuildingID, buildingID))
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Employee, error) {
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
