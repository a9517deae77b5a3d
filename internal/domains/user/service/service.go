package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/repository"
	"hotel/shared/constant"
	"hotel/shared/password"

	"github.com/rs/zerolog/log"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (int64, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Create stores a new customer with a bcrypt-hashed password and returns the generated user id.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err = s.repo.InsertReturning(ctx, req.ToModel(hashedPassword))
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("userID", id).Msg("user created")

	return id, nil
}
