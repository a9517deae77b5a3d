package menu

import (
	"context"
	"fmt"
	"hotel/transport/console/session"
	"io"
	"slices"
	"strings"
)

const separator = "........................."

// HandlerFunc serves one menu operation for the session.
type HandlerFunc func(ctx context.Context, s *session.Session)

// Middleware wraps the handler registered under the operation name.
type Middleware func(name string, next HandlerFunc) HandlerFunc

type Entry struct {
	Choice  int
	Name    string
	Label   string
	Handler HandlerFunc
}

// Menu is a numbered list of operations plus one choice that leaves it.
type Menu struct {
	Title       string
	ExitChoice  int
	ExitLabel   string
	Separated   bool
	entries     []Entry
	middlewares []Middleware
}

func New(title string, exitChoice int, exitLabel string) *Menu {
	return &Menu{
		Title:      title,
		ExitChoice: exitChoice,
		ExitLabel:  exitLabel,
	}
}

// Use appends middlewares applied to every entry registered afterwards, first one outermost.
func (m *Menu) Use(middlewares ...Middleware) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// Handle registers handler under choice. Registering a choice twice, or the exit choice, panics.
func (m *Menu) Handle(choice int, name, label string, handler HandlerFunc) {
	if choice == m.ExitChoice {
		panic(fmt.Sprintf("menu: choice %d is reserved for %q", choice, m.ExitLabel))
	}

	if _, ok := m.Find(choice); ok {
		panic(fmt.Sprintf("menu: choice %d registered twice", choice))
	}

	for idx := len(m.middlewares) - 1; idx >= 0; idx-- {
		handler = m.middlewares[idx](name, handler)
	}

	m.entries = append(m.entries, Entry{Choice: choice, Name: name, Label: label, Handler: handler})

	slices.SortFunc(m.entries, func(a, b Entry) int {
		return a.Choice - b.Choice
	})
}

func (m *Menu) Find(choice int) (Entry, bool) {
	idx := slices.IndexFunc(m.entries, func(e Entry) bool {
		return e.Choice == choice
	})

	if idx == -1 {
		return Entry{}, false
	}

	return m.entries[idx], true
}

func (m *Menu) Entries() []Entry {
	return slices.Clone(m.entries)
}

func (m *Menu) Render(w io.Writer) {
	var b strings.Builder

	b.WriteString(m.Title + "\n")
	b.WriteString(strings.Repeat("-", len(m.Title)) + "\n")

	for _, entry := range m.entries {
		fmt.Fprintf(&b, "%d. %s\n", entry.Choice, entry.Label)
	}

	if m.Separated {
		b.WriteString(separator + "\n")
	}

	fmt.Fprintf(&b, "%d. %s\n", m.ExitChoice, m.ExitLabel)

	_, _ = io.WriteString(w, b.String())
}
