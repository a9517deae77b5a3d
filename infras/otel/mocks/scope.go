package mocks

type scopeImpl struct {
	name string
	otel *Otel
}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}

// TraceError implements otel.Scope.
func (s *scopeImpl) TraceError(err error) {
	if s.otel != nil {
		s.otel.record(err)
	}
}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
