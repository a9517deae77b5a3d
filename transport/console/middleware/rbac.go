package middleware

import (
	"context"
	"hotel/infras/otel"
	authService "hotel/internal/domains/auth/service"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/console/menu"
	"hotel/transport/console/response"
	"hotel/transport/console/session"
)

const msgUnknownOperation = "That operation is not available"

// Role defines the interface for permission checks run before a menu operation.
type Role interface {
	RBAC(name string, next menu.HandlerFunc) menu.HandlerFunc
}

type roleImpl struct {
	auth       authService.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewRoleMiddleware(auth authService.Auth, otel otel.Otel, permissions *permissions.PermissionData) Role {
	return &roleImpl{
		auth:       auth,
		otel:       otel,
		permission: permissions,
	}
}

// RBAC denies operations that are missing from the permission table,
// and those whose permissions the session does not hold.
func (m *roleImpl) RBAC(name string, next menu.HandlerFunc) menu.HandlerFunc {
	return func(ctx context.Context, s *session.Session) {
		ctx, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "rbac",
			"operation":       name,
		})

		if m.permission == nil {
			err := failure.Forbidden(msgUnknownOperation)
			scope.TraceError(err)
			scope.End()
			response.WithError(s, err)

			return
		}

		if m.permission.Skip {
			scope.End()
			next(ctx, s)

			return
		}

		permission, ok := m.permission.FindPermissions(name)
		if !ok {
			err := failure.Forbidden(msgUnknownOperation)
			scope.TraceError(err)
			scope.End()
			response.WithError(s, err)

			return
		}

		if permission.Skip {
			scope.End()
			next(ctx, s)

			return
		}

		userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

		if permission.Requires(permissions.Session) && userID <= 0 {
			scope.TraceError(failure.NotLoggedIn)
			scope.SetAttribute("reason", "not_logged_in")
			scope.End()
			response.WithError(s, failure.NotLoggedIn)

			return
		}

		if permission.Requires(permissions.Manager) && !m.auth.IsManagerOfAnyHotel(ctx, userID) {
			scope.TraceError(failure.NotManagerOfAnyHotel)
			scope.SetAttributes(map[string]any{
				"user_id": userID,
				"reason":  "not_a_manager",
			})
			scope.End()
			response.WithError(s, failure.NotManagerOfAnyHotel)

			return
		}

		scope.End()
		next(ctx, s)
	}
}
