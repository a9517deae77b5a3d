package repair

import (
	"context"
	"hotel/infras/otel"
	authService "hotel/internal/domains/auth/service"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/console/menu"
	"hotel/transport/console/response"
	"hotel/transport/console/session"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Repair
	auth    authService.Auth
	otel    otel.Otel
}

func New(service service.Repair, auth authService.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(m *menu.Menu) {
	m.Handle(9, "place_repair_request", "Place room repair Request to a company", handler.PlaceRoomRepairRequest)
	m.Handle(10, "view_repair_history", "View room repair Requests history", handler.ViewRoomRepairHistory)
}

// PlaceRoomRepairRequest schedules a repair for today on a room in a hotel the user manages.
func (handler *Handler) PlaceRoomRepairRequest(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceRoomRepairRequest")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)
	req := dto.PlaceRepairRequest{}

	var err error

	if req.HotelID, err = s.ReadInt("Enter Hotel ID"); err != nil {
		response.WithError(s, err)

		return
	}

	if req.RoomNumber, err = s.ReadInt("Enter Room Number"); err != nil {
		response.WithError(s, err)

		return
	}

	if !handler.auth.IsManagerOfHotel(ctx, userID, req.HotelID) {
		scope.TraceError(failure.NotManagerOfHotel)

		response.WithError(s, failure.NotManagerOfHotel)

		return
	}

	if req.CompanyID, err = s.ReadInt("Enter Company ID"); err != nil {
		response.WithError(s, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(s, err)

		return
	}

	if _, err := handler.service.Place(ctx, userID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to place repair request")

		response.WithError(s, err)

		return
	}

	scope.AddEvent("Repair request placed")

	response.WithMessage(s, "The repair order has been placed.")
}

// ViewRoomRepairHistory prints every repair on rooms of the hotels the user manages.
func (handler *Handler) ViewRoomRepairHistory(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRoomRepairHistory")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	response.WithMessage(s, "Manager Room Repair Request History")

	count, err := handler.service.PrintHistory(ctx, s.Writer(), userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room repair history")

		response.WithError(s, err)

		return
	}

	if count == 0 {
		response.WithMessage(s, "No repairs have been requested yet")
	}
}
