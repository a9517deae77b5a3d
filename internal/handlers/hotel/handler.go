package hotel

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/console/menu"
	"hotel/transport/console/response"
	"hotel/transport/console/session"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(m *menu.Menu) {
	m.Handle(1, "view_hotels", "View Hotels within 30 units", handler.ViewHotels)
}

// ViewHotels lists the hotels near the coordinates the user enters.
func (handler *Handler) ViewHotels(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewHotels")
	defer scope.End()

	req := dto.NearbyRequest{}

	var err error

	if req.Longitude, err = s.ReadFloat("Longitude"); err != nil {
		response.WithError(s, err)

		return
	}

	if req.Latitude, err = s.ReadFloat("Latitude"); err != nil {
		response.WithError(s, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(s, err)

		return
	}

	hotels, err := handler.service.GetNearby(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get nearby hotels")

		response.WithError(s, err)

		return
	}

	if len(hotels) == 0 {
		response.WithMessage(s, "No hotels within %g units of you", constant.NearbyRadius)

		return
	}

	response.WithMessage(s, "Hotels near you... ")

	for _, hotel := range hotels {
		response.WithMessage(s, "%s (hotelID %d)", hotel.Name, hotel.ID)
	}

	s.Println()
}
