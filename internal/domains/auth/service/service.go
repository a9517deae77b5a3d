package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	hotelModel "hotel/internal/domains/hotel/model"
	hotelRepo "hotel/internal/domains/hotel/repository"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/rs/zerolog/log"
)

const msgInvalidCredentials = "invalid user id or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (int64, error)
	IsManagerOfAnyHotel(ctx context.Context, userID int64) bool
	IsManagerOfHotel(ctx context.Context, userID, hotelID int64) bool
}

type serviceImpl struct {
	userRepo  userRepo.User
	hotelRepo hotelRepo.Hotel
	otel      otel.Otel
}

func New(userRepo userRepo.User, hotelRepo hotelRepo.Hotel, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:  userRepo,
		hotelRepo: hotelRepo,
		otel:      otel,
	}
}

// Login returns the id of the user whose stored hash matches req.Password.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, ok := req.ParseUserID()
	if !ok {
		return 0, failure.Unauthorized(msgInvalidCredentials)
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return 0, failure.Unauthorized(msgInvalidCredentials)
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return 0, failure.Unauthorized(msgInvalidCredentials)
		}

		log.Error().Err(err).Msg("failed to verify password")

		return 0, fmt.Errorf("failed to verify password: %w", err)
	}

	log.Info().Int64("userID", user.ID).Msg("user logged in")

	return user.ID, nil
}

// IsManagerOfAnyHotel reports whether userID manages at least one hotel. Lookup errors count as no.
func (s *serviceImpl) IsManagerOfAnyHotel(ctx context.Context, userID int64) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsManagerOfAnyHotel")
	defer scope.End()

	return s.isManager(ctx, shared.FilterByFields(hotelModel.TableName,
		gDto.Filter{Field: hotelModel.FieldManagerUserID, Value: userID},
	))
}

// IsManagerOfHotel reports whether userID manages hotelID. Lookup errors count as no.
func (s *serviceImpl) IsManagerOfHotel(ctx context.Context, userID, hotelID int64) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsManagerOfHotel")
	defer scope.End()

	return s.isManager(ctx, shared.FilterByFields(hotelModel.TableName,
		gDto.Filter{Field: hotelModel.FieldID, Value: hotelID},
		gDto.Filter{Field: hotelModel.FieldManagerUserID, Value: userID},
	))
}

func (s *serviceImpl) isManager(ctx context.Context, filter gDto.FilterGroup) bool {
	exist, err := s.hotelRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel manager")

		return false
	}

	return exist
}
