package auth

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/console/menu"
	"hotel/transport/console/response"
	"hotel/transport/console/session"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(m *menu.Menu) {
	m.Handle(2, "log_in", "Log in", handler.LogIn)
}

// LogIn binds the session to the user whose credentials match.
func (handler *Handler) LogIn(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LogIn")
	defer scope.End()

	req := dto.LoginRequest{}

	var err error

	if req.UserID, err = s.ReadLine("Enter userID"); err != nil {
		response.WithError(s, err)

		return
	}

	if req.Password, err = s.ReadLine("Enter password"); err != nil {
		response.WithError(s, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(s, err)

		return
	}

	userID, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to log in")

		response.WithError(s, err)

		return
	}

	s.LogIn(userID)

	scope.AddEvent("User logged in")
}
