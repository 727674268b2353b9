package mocks

import (
	"context"
	"sync"

	"link/infras/otel"
)

// Recorder hands out scopes that remember the errors traced on them, keyed
// by span name.
type Recorder struct {
	mu     sync.Mutex
	errors map[string][]error
}

func NewRecorder() *Recorder {
	return &Recorder{errors: map[string][]error{}}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	return ctx, &recordingScope{recorder: r, name: name}
}

// Errors returns what was traced on spans called name.
func (r *Recorder) Errors(name string) []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors[name]...)
}

func (r *Recorder) record(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors[name] = append(r.errors[name], err)
}

type recordingScope struct {
	scopeImpl

	recorder *Recorder
	name     string
}

// TraceError implements otel.Scope.
func (s *recordingScope) TraceError(err error) {
	s.recorder.record(s.name, err)
}

// TraceIfError implements otel.Scope.
func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
