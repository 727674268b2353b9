package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"link/infras/otel"
	"link/internal/domains/credential/model/dto"
	"link/internal/domains/credential/repository"
	"link/internal/scope"
	"link/shared/constant"
	"link/shared/failure"
	"link/shared/logger"
)

type Credential interface {
	Create(ctx context.Context, req dto.CreateCredentialRequest) (int64, error)
	Get(ctx context.Context, id int64) (dto.CredentialResponse, error)
	Update(ctx context.Context, req dto.UpdateCredentialRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	// Claimable fails unless the credential exists and no company or
	// employee is bound to it yet. It reads the base tables, so a fresh
	// credential is found even when the request's views hide it.
	Claimable(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Credential
	store scope.Store
	otel  otel.Otel
}

func New(repo repository.Credential, store scope.Store, otel otel.Otel) Credential {
	return &serviceImpl{
		repo:  repo,
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCredentialRequest) (id int64, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".credential.Create")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to create credential")

		return 0, fmt.Errorf("failed to create credential: %w", err)
	}

	return id, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CredentialResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".credential.Get")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	credential, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get credential: %w", err)
	}

	res.FromModel(credential)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCredentialRequest, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".credential.Update")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Update(ctx, id, req.ToPatch()); err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".credential.Delete")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("passwordId", id).Msg("failed to delete credential")

		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}

func (s *serviceImpl) Claimable(ctx context.Context, id int64) (err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".credential.Claimable")
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	binding, err := s.store.CredentialBinding(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("passwordId", id).Msg("failed to check credential")

		return fmt.Errorf("failed to check credential: %w", err)
	}

	switch {
	case !binding.Exists:
		return failure.BadRequestFromString("credential does not exist")
	case !binding.Free():
		return failure.Conflict("credential is already bound")
	}

	return nil
}
