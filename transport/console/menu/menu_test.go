package menu_test

import (
	"bytes"
	"context"
	"hotel/transport/console/menu"
	"hotel/transport/console/session"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(_ context.Context, _ *session.Session) {}

func TestRender(t *testing.T) {
	m := menu.New("MAIN MENU", 9, "< EXIT")
	m.Handle(2, "log_in", "Log in", noop)
	m.Handle(1, "create_user", "Create user", noop)

	var out bytes.Buffer
	m.Render(&out)

	assert.Equal(t, "MAIN MENU\n---------\n1. Create user\n2. Log in\n9. < EXIT\n", out.String())
}

func TestRender_Separated(t *testing.T) {
	m := menu.New("USER MENU", 20, "Log out")
	m.Separated = true
	m.Handle(1, "view_hotels", "View Hotels within 30 units", noop)

	var out bytes.Buffer
	m.Render(&out)

	assert.True(t, strings.HasSuffix(out.String(), ".........................\n20. Log out\n"))
}

func TestHandle_MiddlewareOrder(t *testing.T) {
	var calls []string

	trace := func(tag string) menu.Middleware {
		return func(name string, next menu.HandlerFunc) menu.HandlerFunc {
			return func(ctx context.Context, s *session.Session) {
				calls = append(calls, tag+":"+name)
				next(ctx, s)
			}
		}
	}

	m := menu.New("MAIN MENU", 9, "< EXIT")
	m.Use(trace("outer"), trace("inner"))
	m.Handle(1, "create_user", "Create user", func(_ context.Context, _ *session.Session) {
		calls = append(calls, "handler")
	})

	entry, ok := m.Find(1)
	require.True(t, ok)

	entry.Handler(context.Background(), session.New(strings.NewReader(""), &bytes.Buffer{}))

	assert.Equal(t, []string{"outer:create_user", "inner:create_user", "handler"}, calls)
}

func TestHandle_Duplicates(t *testing.T) {
	m := menu.New("MAIN MENU", 9, "< EXIT")
	m.Handle(1, "create_user", "Create user", noop)

	assert.Panics(t, func() { m.Handle(1, "log_in", "Log in", noop) })
	assert.Panics(t, func() { m.Handle(9, "log_in", "Log in", noop) })

	_, ok := m.Find(3)
	assert.False(t, ok)
	assert.Len(t, m.Entries(), 1)
}
