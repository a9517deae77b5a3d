package room

import (
	"context"
	"hotel/infras/otel"
	authService "hotel/internal/domains/auth/service"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/console/menu"
	"hotel/transport/console/response"
	"hotel/transport/console/session"
	"strings"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	auth    authService.Auth
	otel    otel.Otel
}

func New(service service.Room, auth authService.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(m *menu.Menu) {
	m.Handle(2, "view_rooms", "View Rooms", handler.ViewRooms)
	m.Handle(5, "update_room", "Update Room Information", handler.UpdateRoomInfo)
	m.Handle(6, "view_recent_updates", "View 5 recent Room Updates Info", handler.ViewRecentUpdates)
}

// ViewRooms lists the rooms of a hotel that are free on the entered date.
func (handler *Handler) ViewRooms(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRooms")
	defer scope.End()

	req := dto.AvailableRoomsRequest{}

	var err error

	if req.HotelID, err = s.ReadInt("Enter Hotel ID"); err != nil {
		response.WithError(s, err)

		return
	}

	if req.Date, err = s.ReadDate("Enter Date"); err != nil {
		response.WithError(s, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(s, err)

		return
	}

	rooms, err := handler.service.GetAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(s, err)

		return
	}

	if len(rooms) == 0 {
		response.WithMessage(s, "Sorry there are no rooms at the hotel currently available for that booking date")

		return
	}

	for _, room := range rooms {
		response.WithMessage(s, "The room %d is available for %d bells, image url: %s", room.RoomNumber, room.Price, room.ImageURL)
	}

	s.Println()
}

// UpdateRoomInfo changes the price or the image url of a room in a hotel the user manages.
func (handler *Handler) UpdateRoomInfo(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomInfo")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)
	req := dto.UpdateRoomRequest{}

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

	option, err := s.ReadLine("Would you like to update the 'price' or the 'image url', enter something besides the options to exit")
	if err != nil {
		response.WithError(s, err)

		return
	}

	option = strings.TrimSpace(option)

	switch option {
	case constant.RoomFieldPrice:
		price, err := s.ReadInt("Enter New Room Price")
		if err != nil {
			response.WithError(s, err)

			return
		}

		req.Price = &price
	case constant.RoomFieldImageURL:
		imageURL, err := s.ReadLine("New image url for room")
		if err != nil {
			response.WithError(s, err)

			return
		}

		imageURL = strings.TrimSpace(imageURL)
		req.ImageURL = &imageURL
	default:
		response.WithMessage(s, "\tyour input: %s ?", option)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(s, err)

		return
	}

	if err := handler.service.Update(ctx, userID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(s, err)

		return
	}

	scope.AddEvent("Room updated")

	if req.Price != nil {
		response.WithMessage(s, "\tUpdated price")

		return
	}

	response.WithMessage(s, "\tUpdated Image Url")
}

// ViewRecentUpdates prints the latest room updates made by the user.
func (handler *Handler) ViewRecentUpdates(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRecentUpdates")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	count, err := handler.service.PrintRecentUpdates(ctx, s.Writer(), userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent room updates")

		response.WithError(s, err)

		return
	}

	if count == 0 {
		response.WithMessage(s, "You have not updated any rooms yet")
	}
}
