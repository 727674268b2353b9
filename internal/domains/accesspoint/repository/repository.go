package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/accesspoint/model"
	"link/internal/scope"
	"link/shared"
	gDto "link/shared/dto"
	gRepo "link/shared/repository"
)

type AccessPoint interface {
	Insert(ctx context.Context, model model.AccessPoint) (int64, error)
	GetByRoomID(ctx context.Context, roomID int64) ([]model.AccessPoint, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.AccessPoint]
}

func New(db *postgres.Connection, otel otel.Otel) AccessPoint {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.AccessPoint](scope.TableAccessPoint, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, accessPoint model.AccessPoint) (int64, error) {
	columns, values := accessPoint.Columns()

	return r.repo.Insert(ctx, columns, values)
}

// GetByRoomID returns an empty list for a room without readers.
func (r *repositoryImpl) GetByRoomID(ctx context.Context, roomID int64) ([]model.AccessPoint, error) {
	return r.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(model.FieldRoomID, roomID))
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}
