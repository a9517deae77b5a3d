package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetAvailable(ctx context.Context, req dto.AvailableRoomsRequest) ([]dto.RoomResponse, error)
	Update(ctx context.Context, managerID int64, req dto.UpdateRoomRequest) error
	PrintRecentUpdates(ctx context.Context, w io.Writer, managerID int64) (int, error)
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAvailable(ctx context.Context, req dto.AvailableRoomsRequest) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.GetAvailable(ctx, req.HotelID, req.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res = make([]dto.RoomResponse, len(rooms))
	for idx, room := range rooms {
		res[idx].FromModel(room)
	}

	return res, nil
}

// Update changes the room and records managerID in the update log. The caller
// must already have checked that managerID manages req.HotelID.
func (s *serviceImpl) Update(ctx context.Context, managerID int64, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	mod := shared.TransformFields(req)
	if len(mod) == 0 {
		return failure.BadRequestFromString("nothing to update") // nolint:wrapcheck
	}

	found, err := s.repo.UpdateWithLog(ctx, mod, req.ToLogModel(managerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	if !found {
		return failure.NotFound(fmt.Sprintf("room %d does not exist at hotel %d", req.RoomNumber, req.HotelID)) // nolint:wrapcheck
	}

	log.Info().Int64("managerID", managerID).Int64("hotelID", req.HotelID).Int64("roomNumber", req.RoomNumber).Msg("room updated")

	return nil
}

func (s *serviceImpl) PrintRecentUpdates(ctx context.Context, w io.Writer, managerID int64) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PrintRecentUpdates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err = s.repo.PrintRecentUpdates(ctx, w, managerID, constant.RecentLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to print recent room updates")

		return 0, fmt.Errorf("failed to print recent room updates: %w", err)
	}

	return count, nil
}
