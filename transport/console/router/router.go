package router

import (
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/repair"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/transport/console/menu"
	"hotel/transport/console/middleware"
)

const (
	MainMenuTitle  = "MAIN MENU"
	MainExitChoice = 9
	UserMenuTitle  = "USER MENU"
	UserExitChoice = 20
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Hotel   hotel.Handler
	Room    room.Handler
	Booking booking.Handler
	Repair  repair.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Role           middleware.Role
}

// SetupRoutes builds the menu shown before log in and the one shown after.
func (r *Router) SetupRoutes() (mainMenu, userMenu *menu.Menu) {
	mainMenu = menu.New(MainMenuTitle, MainExitChoice, "< EXIT")
	mainMenu.Use(r.Role.RBAC)
	r.DomainHandlers.User.Router(mainMenu)
	r.DomainHandlers.Auth.Router(mainMenu)

	userMenu = menu.New(UserMenuTitle, UserExitChoice, "Log out")
	userMenu.Separated = true
	userMenu.Use(r.Role.RBAC)
	r.DomainHandlers.Hotel.Router(userMenu)
	r.DomainHandlers.Room.Router(userMenu)
	r.DomainHandlers.Booking.Router(userMenu)
	r.DomainHandlers.Repair.Router(userMenu)

	return mainMenu, userMenu
}

func New(domainHandlers DomainHandlers, role middleware.Role) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Role:           role,
	}
}
