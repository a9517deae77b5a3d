package router_test

import (
	"bytes"
	"hotel/infras/otel/mocks"
	authMocks "hotel/internal/domains/auth/service/mocks"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/repair"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/permissions"
	"hotel/transport/console/middleware"
	"hotel/transport/console/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetupRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	otel := mocks.NewOtel()
	authSvc := authMocks.NewMockAuth(ctrl)

	r := router.New(router.DomainHandlers{
		Auth:    auth.New(authSvc, otel),
		User:    user.New(nil, otel),
		Hotel:   hotel.New(nil, otel),
		Room:    room.New(nil, authSvc, otel),
		Booking: booking.New(nil, authSvc, otel),
		Repair:  repair.New(nil, authSvc, otel),
	}, middleware.NewRoleMiddleware(authSvc, otel, permissions.Get()))

	mainMenu, userMenu := r.SetupRoutes()

	var out bytes.Buffer
	mainMenu.Render(&out)
	assert.Equal(t, "MAIN MENU\n---------\n1. Create user\n2. Log in\n9. < EXIT\n", out.String())

	out.Reset()
	userMenu.Render(&out)
	assert.Equal(t, "USER MENU\n---------\n"+
		"1. View Hotels within 30 units\n"+
		"2. View Rooms\n"+
		"3. Book a Room\n"+
		"4. View recent booking history\n"+
		"5. Update Room Information\n"+
		"6. View 5 recent Room Updates Info\n"+
		"7. View booking history of the hotel\n"+
		"8. View 5 regular Customers\n"+
		"9. Place room repair Request to a company\n"+
		"10. View room repair Requests history\n"+
		".........................\n"+
		"20. Log out\n", out.String())

	data := permissions.Get()
	for _, entry := range append(mainMenu.Entries(), userMenu.Entries()...) {
		_, ok := data.FindPermissions(entry.Name)
		assert.True(t, ok, "operation %s has no permission entry", entry.Name)
	}
}
