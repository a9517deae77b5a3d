package user

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/console/menu"
	"hotel/transport/console/response"
	"hotel/transport/console/session"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(m *menu.Menu) {
	m.Handle(1, "create_user", "Create user", handler.CreateUser)
}

// CreateUser registers a customer and prints the generated user id.
func (handler *Handler) CreateUser(ctx context.Context, s *session.Session) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	var err error

	if req.Name, err = s.ReadLine("Enter name"); err != nil {
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

	userID, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create user")

		response.WithError(s, err)

		return
	}

	scope.AddEvent("User created")

	response.WithMessage(s, "User successfully created with userID = %d", userID)
}
