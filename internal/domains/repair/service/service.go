package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io"

	"github.com/rs/zerolog/log"
)

type Repair interface {
	Place(ctx context.Context, managerID int64, req dto.PlaceRepairRequest) (int64, error)
	PrintHistory(ctx context.Context, w io.Writer, managerID int64) (int, error)
}

type serviceImpl struct {
	repo repository.Repair
	otel otel.Otel
}

func New(repo repository.Repair, otel otel.Otel) Repair {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Place orders a repair of the room from the maintenance company. The caller
// must already have checked that managerID manages req.HotelID.
func (s *serviceImpl) Place(ctx context.Context, managerID int64, req dto.PlaceRepairRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Place")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.CompanyExists(ctx, req.CompanyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check maintenance company")

		return 0, fmt.Errorf("failed to check maintenance company: %w", err)
	}

	if !exists {
		return 0, failure.NotFound(fmt.Sprintf("maintenance company %d does not exist", req.CompanyID)) // nolint:wrapcheck
	}

	id, err = s.repo.Place(ctx, req.ToModel(), managerID)
	if postgres.IsForeignKeyViolation(err) {
		return 0, failure.NotFound(fmt.Sprintf("room %d does not exist at hotel %d", req.RoomNumber, req.HotelID)) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to place repair request")

		return 0, fmt.Errorf("failed to place repair request: %w", err)
	}

	log.Info().Int64("repairID", id).Int64("managerID", managerID).Msg("repair request placed")

	return id, nil
}

func (s *serviceImpl) PrintHistory(ctx context.Context, w io.Writer, managerID int64) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PrintHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err = s.repo.PrintHistory(ctx, w, managerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to print repair history")

		return 0, fmt.Errorf("failed to print repair history: %w", err)
	}

	return count, nil
}
