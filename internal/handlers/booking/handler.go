package booking

import (
	"context"
	"hotel/infras/otel"
	authService "hotel/internal/domains/auth/service"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/console/menu"
	"hotel/transport/console/response"
	"hotel/transport/console/session"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	auth    authService.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth authService.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(m *menu.Menu) {
	m.Handle(3, "book_room", "Book a Room", handler.BookRoom)
	m.Handle(4, "view_recent_bookings", "View recent booking history", handler.ViewRecentBookings)
	m.Handle(7, "view_hotel_booking_history", "View booking history of the hotel", handler.ViewBookingHistoryOfHotel)
	m.Handle(8, "view_regular_customers", "View 5 regular Customers", handler.ViewRegularCustomers)
}

// BookRoom reserves a room for the user on the entered date.
func (handler *Handler) BookRoom(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)
	req := dto.BookRoomRequest{}

	var err error

	if req.HotelID, err = s.ReadInt("Enter Hotel ID"); err != nil {
		response.WithError(s, err)

		return
	}

	if req.RoomNumber, err = s.ReadInt("Enter Room Number"); err != nil {
		response.WithError(s, err)

		return
	}

	if req.BookingDate, err = s.ReadDate("Enter Booking Date"); err != nil {
		response.WithError(s, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(s, err)

		return
	}

	receipt, err := handler.service.Book(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(s, err)

		return
	}

	scope.AddEvent("Room booked")

	response.WithMessage(s, "The room %d has been booked and you've been charged %d bells", receipt.RoomNumber, receipt.Price)
}

// ViewRecentBookings prints the user's latest bookings.
func (handler *Handler) ViewRecentBookings(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRecentBookings")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	bookings, err := handler.service.GetRecent(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent bookings")

		response.WithError(s, err)

		return
	}

	if len(bookings) == 0 {
		response.WithMessage(s, "Sorry you have no current booking history")

		return
	}

	for _, booking := range bookings {
		response.WithMessage(s, "The hotelID is %d", booking.HotelID)
		response.WithMessage(s, "The roomNumber is %d", booking.RoomNumber)
		response.WithMessage(s, "The price is %d", booking.Price)
		response.WithMessage(s, "The date is %s", booking.BookingDate)
		s.Println()
	}
}

// ViewBookingHistoryOfHotel prints the bookings within an inclusive date range
// across every hotel the user manages.
func (handler *Handler) ViewBookingHistoryOfHotel(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewBookingHistoryOfHotel")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)
	req := dto.HistoryRequest{}

	var err error

	if req.From, err = s.ReadDate("Please enter the starting date of your range"); err != nil {
		response.WithError(s, err)

		return
	}

	if req.To, err = s.ReadDate("Please enter the end date of your range"); err != nil {
		response.WithError(s, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(s, err)

		return
	}

	bookings, err := handler.service.GetHotelHistory(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel booking history")

		response.WithError(s, err)

		return
	}

	if len(bookings) == 0 {
		response.WithMessage(s, "No bookings between those time spans")

		return
	}

	for _, booking := range bookings {
		response.WithMessage(s, "The bookingID is %d", booking.BookingID)
		response.WithMessage(s, "The customer name is %s", booking.CustomerName)
		response.WithMessage(s, "The hotelID is %d", booking.HotelID)
		response.WithMessage(s, "The roomNumber is %d", booking.RoomNumber)
		response.WithMessage(s, "The date is %s", booking.BookingDate)
		s.Println()
	}
}

// ViewRegularCustomers prints the customers with the most bookings at a hotel the user manages.
func (handler *Handler) ViewRegularCustomers(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRegularCustomers")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	hotelID, err := s.ReadInt("Enter Hotel ID")
	if err != nil {
		response.WithError(s, err)

		return
	}

	if !handler.auth.IsManagerOfHotel(ctx, userID, hotelID) {
		scope.TraceError(failure.NotManagerOfHotel)

		response.WithError(s, failure.NotManagerOfHotel)

		return
	}

	customers, err := handler.service.GetRegularCustomers(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get regular customers")

		response.WithError(s, err)

		return
	}

	if len(customers) == 0 {
		response.WithMessage(s, "No customers have booked at that hotel yet")

		return
	}

	response.WithMessage(s, "The top %d customers who made the most bookings:", constant.RecentLimit)

	for _, customer := range customers {
		response.WithMessage(s, "%s %d", customer.Name, customer.Bookings)
	}

	s.Println()
}
