package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Otel hands out no-op scopes and remembers every error a scope traced, so
// tests can check that a failed booking or repair reached the span.
type Otel struct {
	mu     sync.Mutex
	scopes []string
	errors []error
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.scopes = append(o.scopes, name)

	return ctx, &scopeImpl{name: name, otel: o}
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) {}

// Scopes lists the names of the scopes opened so far, in order.
func (o *Otel) Scopes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.scopes...)
}

// TracedErrors lists the errors recorded on any scope.
func (o *Otel) TracedErrors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

func (o *Otel) record(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.errors = append(o.errors, err)
}

// NewOtel returns a recorder usable wherever an otel.Otel is injected.
func NewOtel() *Otel {
	return &Otel{}
}
