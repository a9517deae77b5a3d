package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Book(ctx context.Context, customerID int64, req dto.BookRoomRequest) (dto.BookingReceipt, error)
	GetRecent(ctx context.Context, customerID int64) ([]dto.CustomerBookingResponse, error)
	GetHotelHistory(ctx context.Context, managerID int64, req dto.HistoryRequest) ([]dto.HotelBookingResponse, error)
	GetRegularCustomers(ctx context.Context, hotelID int64) ([]dto.RegularCustomerResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Book reserves the room for customerID. A missing room and a room already
// taken on that date both yield failure.RoomUnavailable.
func (s *serviceImpl) Book(ctx context.Context, customerID int64, req dto.BookRoomRequest) (res dto.BookingReceipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	receipt, err := s.repo.Book(ctx, req.ToModel(customerID))
	if errors.Is(err, repository.ErrRoomBooked) || errors.Is(err, repository.ErrRoomNotFound) {
		log.Info().Err(err).Int64("hotelID", req.HotelID).Int64("roomNumber", req.RoomNumber).Msg("room unavailable")

		return res, failure.RoomUnavailable
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to book room")

		return res, fmt.Errorf("failed to book room: %w", err)
	}

	res.FromModel(req, receipt)

	log.Info().Int64("bookingID", res.BookingID).Int64("customerID", customerID).Msg("room booked")

	return res, nil
}

// GetRecent returns at most constant.RecentLimit bookings, newest first.
func (s *serviceImpl) GetRecent(ctx context.Context, customerID int64) (res []dto.CustomerBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetRecentByCustomer(ctx, customerID, constant.RecentLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	bookings = shared.Truncate(bookings, constant.RecentLimit)

	res = make([]dto.CustomerBookingResponse, len(bookings))
	for idx, booking := range bookings {
		res[idx].FromModel(booking)
	}

	return res, nil
}

func (s *serviceImpl) GetHotelHistory(ctx context.Context, managerID int64, req dto.HistoryRequest) (res []dto.HotelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotelHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetByManager(ctx, managerID, req.From, req.To)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel booking history")

		return nil, fmt.Errorf("failed to get hotel booking history: %w", err)
	}

	res = make([]dto.HotelBookingResponse, len(bookings))
	for idx, booking := range bookings {
		res[idx].FromModel(booking)
	}

	return res, nil
}

// GetRegularCustomers returns the top constant.RecentLimit customers of hotelID by booking count.
func (s *serviceImpl) GetRegularCustomers(ctx context.Context, hotelID int64) (res []dto.RegularCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRegularCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customers, err := s.repo.GetRegularCustomers(ctx, hotelID, constant.RecentLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get regular customers")

		return nil, fmt.Errorf("failed to get regular customers: %w", err)
	}

	customers = shared.Truncate(customers, constant.RecentLimit)

	res = make([]dto.RegularCustomerResponse, len(customers))
	for idx, customer := range customers {
		res[idx].FromModel(customer)
	}

	return res, nil
}
