package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/domains/tpaxroom/model"
	"link/internal/scope"
	"link/shared"
	gDto "link/shared/dto"
	gRepo "link/shared/repository"
	"link/shared/statement"
)

type TPARoom interface {
	Insert(ctx context.Context, model model.TPARoom) error
	GetByTPAID(ctx context.Context, tpaID int64) ([]model.TPARoom, error)
	MoveRoom(ctx context.Context, link model.TPARoom, roomID int64) error
	Delete(ctx context.Context, link model.TPARoom) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.TPARoom]
}

func New(db *postgres.Connection, otel otel.Otel) TPARoom {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.TPARoom](scope.TableTPAxRoom, db, otel),
	}
}

// Insert returns no key. The RETURNING column is tpaId, which the caller
// already holds.
func (r *repositoryImpl) Insert(ctx context.Context, link model.TPARoom) error {
	columns, values := link.Columns()

	_, err := r.repo.Insert(ctx, columns, values)

	return err
}

func (r *repositoryImpl) GetByTPAID(ctx context.Context, tpaID int64) ([]model.TPARoom, error) {
	return r.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(model.FieldTPAID, tpaID))
}

func (r *repositoryImpl) MoveRoom(ctx context.Context, link model.TPARoom, roomID int64) error {
	return r.repo.UpdateComposite(ctx, keys(link), []string{model.FieldRoomID}, []any{roomID})
}

func (r *repositoryImpl) Delete(ctx context.Context, link model.TPARoom) error {
	return r.repo.DeleteComposite(ctx, keys(link))
}

func keys(link model.TPARoom) []statement.Key {
	return []statement.Key{
		{Column: model.FieldTPAID, Value: link.TPAID},
		{Column: model.FieldRoomID, Value: link.RoomID},
	}
}
