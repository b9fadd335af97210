package multifn

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/on-the-ground/multi_ive_go/category"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Handler handles calls routed to one dispatch value.
type Handler[A, R any] func(A) (R, error)

// KeyFunc computes the dispatch value of a call.
// Its error is returned from Call unmodified.
type KeyFunc[A any] func(A) (any, error)

// KeyOf adapts a key function that cannot fail. Its result type is free,
// so KeyOf(category.Of) works as is.
func KeyOf[A, K any](fn func(A) K) KeyFunc[A] {
	return func(arg A) (any, error) {
		return fn(arg), nil
	}
}

// DefaultValue is what Resolve reports when a call falls through to the default handler.
var DefaultValue any = defaultValue{}

type defaultValue struct{}

func (defaultValue) String() string { return "<default>" }

// MultiFn dispatches calls to handlers by a dispatch value computed from the argument.
type MultiFn[A, R any] struct {
	Id string

	keyFn  KeyFunc[A]
	opts   options
	logger *zap.Logger

	mu    sync.Mutex // serializes writers; readers load state
	state atomic.Pointer[table[A, R]]
}

// New creates a MultiFn dispatching on keyFn. It panics if keyFn is nil.
func New[A, R any](keyFn KeyFunc[A], opts ...Option) *MultiFn[A, R] {
	if keyFn == nil {
		panic("multifn.New: nil key function")
	}
	o := newOptions(opts)
	m := &MultiFn[A, R]{
		Id:    uuid.New().String(),
		keyFn: keyFn,
		opts:  o,
	}
	m.logger = o.logger.With(zap.String("multifn", m.Id), zap.String("name", o.name))
	m.state.Store(emptyTable[A, R]())
	m.logger.Debug("created multifn")
	return m
}

// Name returns the configured name, or the id when unnamed.
func (m *MultiFn[A, R]) Name() string {
	if m.opts.name != "" {
		return m.opts.name
	}
	return m.Id
}

func (m *MultiFn[A, R]) update(fn func(*table[A, R]) *table[A, R]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Store(fn(m.state.Load()))
}

// Method registers h for dispatch value v, replacing any handler already
// registered for v. It returns h so a handler can be defined and registered
// in one statement.
func (m *MultiFn[A, R]) Method(v any, h Handler[A, R]) Handler[A, R] {
	if h == nil {
		panic("multifn.Method: nil handler")
	}
	m.update(func(t *table[A, R]) *table[A, R] {
		return t.withMethod(v, h)
	})
	m.logger.Debug("registered method", zap.Any("value", v))
	return h
}

// Default registers the handler used when no dispatch value matches.
func (m *MultiFn[A, R]) Default(h Handler[A, R]) Handler[A, R] {
	if h == nil {
		panic("multifn.Default: nil handler")
	}
	m.update(func(t *table[A, R]) *table[A, R] {
		return t.withFallback(h)
	})
	m.logger.Debug("registered default")
	return h
}

// Prefer declares that a outranks b whenever both match a call.
// Only that direction is recorded. Contradicting an earlier declaration is
// allowed but logged; see Conflicts.
func (m *MultiFn[A, R]) Prefer(a, b any) {
	var contradicts bool
	m.update(func(t *table[A, R]) *table[A, R] {
		contradicts = t.prefers(b, a)
		return t.withPreference(a, b)
	})
	if contradicts {
		m.logger.Warn("preference contradicts an earlier one",
			zap.Any("preferred", a), zap.Any("over", b))
		return
	}
	m.logger.Debug("declared preference", zap.Any("preferred", a), zap.Any("over", b))
}

// RemoveMethod unregisters v. It reports whether v was registered.
func (m *MultiFn[A, R]) RemoveMethod(v any) bool {
	var removed bool
	m.update(func(t *table[A, R]) *table[A, R] {
		var next *table[A, R]
		next, removed = t.withoutMethod(v)
		return next
	})
	if removed {
		m.logger.Debug("removed method", zap.Any("value", v))
	}
	return removed
}

// ClearDefault unregisters the default handler.
func (m *MultiFn[A, R]) ClearDefault() {
	m.update(func(t *table[A, R]) *table[A, R] {
		return t.withFallback(nil)
	})
}

// Call computes the dispatch value of arg and runs the chosen handler with arg.
// Key function and handler errors are returned as they are.
func (m *MultiFn[A, R]) Call(arg A) (R, error) {
	var zero R
	key, err := m.keyFn(arg)
	if err != nil {
		return zero, err
	}

	v, h, err := m.state.Load().resolve(m.Name(), key, m.opts.hierarchy)
	if err != nil {
		if ce := m.logger.Check(zap.DebugLevel, "dispatch failed"); ce != nil {
			ce.Write(zap.Any("key", key), zap.Error(err))
		}
		return zero, err
	}
	if ce := m.logger.Check(zap.DebugLevel, "dispatching"); ce != nil {
		ce.Write(zap.Any("key", key), zap.Any("value", v))
	}
	return h(arg)
}

// Resolve reports the dispatch value Call would choose for arg without
// running any handler. It returns DefaultValue for the default handler.
func (m *MultiFn[A, R]) Resolve(arg A) (any, error) {
	key, err := m.keyFn(arg)
	if err != nil {
		return nil, err
	}
	v, _, err := m.state.Load().resolve(m.Name(), key, m.opts.hierarchy)
	return v, err
}

// Methods returns the registered dispatch values in registration order.
func (m *MultiFn[A, R]) Methods() []any {
	return m.state.Load().values()
}

// Handler returns the handler registered for exactly v.
func (m *MultiFn[A, R]) Handler(v any) (Handler[A, R], bool) {
	return m.state.Load().handler(v)
}

// HasDefault reports whether a default handler is registered.
func (m *MultiFn[A, R]) HasDefault() bool {
	return m.state.Load().fallback != nil
}

// Prefers reports whether a was declared preferred over b.
func (m *MultiFn[A, R]) Prefers(a, b any) bool {
	return m.state.Load().prefers(a, b)
}

// Conflicts returns one PreferenceConflictError per pair of values declared
// preferred over each other, combined with multierr, or nil.
func (m *MultiFn[A, R]) Conflicts() error {
	decls := m.state.Load().preferences()

	var errs error
	for i, p := range decls {
		reverse := preference{Preferred: p.Over, Over: p.Preferred}
		if seenPair(decls[:i], p) || !seenPair(decls[:i], reverse) {
			continue
		}
		errs = multierr.Append(errs, &PreferenceConflictError{Name: m.Name(), A: p.Over, B: p.Preferred})
	}
	return errs
}

func seenPair(decls []preference, p preference) bool {
	for _, d := range decls {
		if category.Equal(d.Preferred, p.Preferred) && category.Equal(d.Over, p.Over) {
			return true
		}
	}
	return false
}
