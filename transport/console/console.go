package console

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/transport/console/router"
	"hotel/transport/console/session"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"
)

const (
	banner = "\n\n*******************************************************\n" +
		"              User Interface      \n" +
		"*******************************************************\n\n"
	msgUnrecognizedChoice = "Unrecognized choice!"
)

type Console struct {
	Config    *config.Config
	Router    router.Router
	conn      *postgres.Connection
	out       io.Writer
	closeOnce sync.Once
}

func New(cfg *config.Config, r router.Router, conn *postgres.Connection) *Console {
	return &Console{
		Config: cfg,
		Router: r,
		conn:   conn,
		out:    os.Stdout,
	}
}

// Serve runs the menu loop on in and out until the user exits from the main
// menu, the input is exhausted or ctx is cancelled.
func (c *Console) Serve(ctx context.Context, in io.Reader, out io.Writer) {
	c.out = out

	mainMenu, userMenu := c.Router.SetupRoutes()
	s := session.New(in, out)

	s.Print(banner)

	log.Info().Str("app", c.Config.App.Name).Msg("Console session started")

	for ctx.Err() == nil && !s.Closed() {
		current := mainMenu
		if s.LoggedIn() {
			current = userMenu
		}

		current.Render(out)

		choice, err := s.ReadChoice()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Error().Err(err).Msg("Failed to read menu choice")
			}

			return
		}

		if choice == current.ExitChoice {
			if !s.LoggedIn() {
				return
			}

			s.LogOut()

			continue
		}

		entry, ok := current.Find(choice)
		if !ok {
			s.Println(msgUnrecognizedChoice)

			continue
		}

		entry.Handler(context.WithValue(ctx, constant.ContextKeyUserID, s.UserID()), s)
	}
}

// Close disconnects from the database once, however many times it is called.
func (c *Console) Close() {
	c.closeOnce.Do(func() {
		_, _ = io.WriteString(c.out, "Disconnecting from database...")

		if c.conn != nil {
			c.conn.Close()
		}

		_, _ = io.WriteString(c.out, "Done\n\nBye !\n")
	})
}

// HandleSignals closes the console and exits when the process is interrupted.
func (c *Console) HandleSignals() {
	signalCh := make(chan os.Signal, 1)

	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go c.respondToSigterm(signalCh)
}

func (c *Console) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	log.Warn().Msg("Received SIGTERM. Shutting down now.")

	c.Close()
}
