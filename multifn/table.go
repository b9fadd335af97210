package multifn

import (
	"github.com/benbjohnson/immutable"
	"github.com/on-the-ground/multi_ive_go/category"
	"github.com/on-the-ground/multi_ive_go/internal/valuekey"
	"github.com/on-the-ground/multi_ive_go/shared/helper"
)

// table is one immutable snapshot of a MultiFn's registrations.
// Every mutation returns a new table; a published table is never modified.
type table[A, R any] struct {
	methods  *immutable.Map  // dispatch value -> Handler[A, R]
	order    *immutable.List // dispatch values in registration order
	prefs    *immutable.Map  // preferred value -> *immutable.Map set of values it outranks
	declared *immutable.List // preference, in declaration order
	fallback Handler[A, R]
}

type preference struct {
	Preferred, Over any
}

func emptyTable[A, R any]() *table[A, R] {
	return &table[A, R]{
		methods:  immutable.NewMap(valuekey.Hasher{}),
		order:    immutable.NewList(),
		prefs:    immutable.NewMap(valuekey.Hasher{}),
		declared: immutable.NewList(),
	}
}

func (t *table[A, R]) clone() *table[A, R] {
	next := *t
	return &next
}

func (t *table[A, R]) handler(v any) (Handler[A, R], bool) {
	return helper.GetTypedValueOf2[Handler[A, R]](func() (any, bool) {
		return t.methods.Get(v)
	})
}

func (t *table[A, R]) values() []any {
	out := make([]any, 0, t.order.Len())
	itr := t.order.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		out = append(out, v)
	}
	return out
}

// withMethod keeps v's original position when it is already registered.
func (t *table[A, R]) withMethod(v any, h Handler[A, R]) *table[A, R] {
	next := t.clone()
	if _, exists := t.methods.Get(v); !exists {
		next.order = t.order.Append(v)
	}
	next.methods = t.methods.Set(v, h)
	return next
}

func (t *table[A, R]) withoutMethod(v any) (*table[A, R], bool) {
	if _, exists := t.methods.Get(v); !exists {
		return t, false
	}
	next := t.clone()
	next.methods = t.methods.Delete(v)
	b := immutable.NewListBuilder(immutable.NewList())
	itr := t.order.Iterator()
	for !itr.Done() {
		if _, u := itr.Next(); !category.Equal(u, v) {
			b.Append(u)
		}
	}
	next.order = b.List()
	return next, true
}

func (t *table[A, R]) withFallback(h Handler[A, R]) *table[A, R] {
	next := t.clone()
	next.fallback = h
	return next
}

func (t *table[A, R]) outranked(a any) (*immutable.Map, bool) {
	return helper.GetTypedValueOf2[*immutable.Map](func() (any, bool) {
		return t.prefs.Get(a)
	})
}

func (t *table[A, R]) prefers(a, b any) bool {
	set, ok := t.outranked(a)
	if !ok {
		return false
	}
	_, ok = set.Get(b)
	return ok
}

func (t *table[A, R]) withPreference(a, b any) *table[A, R] {
	set, ok := t.outranked(a)
	if !ok {
		set = immutable.NewMap(valuekey.Hasher{})
	}
	next := t.clone()
	next.prefs = t.prefs.Set(a, set.Set(b, struct{}{}))
	next.declared = t.declared.Append(preference{Preferred: a, Over: b})
	return next
}

func (t *table[A, R]) preferences() []preference {
	itr := t.declared.Iterator()
	return helper.MustCollectTypedValues[preference](itr.Done, func() any {
		_, v := itr.Next()
		return v
	})
}

// candidates returns the registered values matching key, in registration order.
func (t *table[A, R]) candidates(key any, hierarchy func(key, registered any) bool) []any {
	var out []any
	itr := t.order.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if category.Equal(key, v) || hierarchy(key, v) {
			out = append(out, v)
		}
	}
	return out
}

// cyclic reports whether the preferences among cands contain a cycle.
// A cycle makes the whole call ambiguous, even for candidates outside it.
func (t *table[A, R]) cyclic(cands []any) bool {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(cands))
	var visit func(i int) bool
	visit = func(i int) bool {
		state[i] = visiting
		for j, c := range cands {
			if i == j || category.Equal(cands[i], c) || !t.prefers(cands[i], c) {
				continue
			}
			if state[j] == visiting || (state[j] == unvisited && visit(j)) {
				return true
			}
		}
		state[i] = done
		return false
	}
	for i := range cands {
		if state[i] == unvisited && visit(i) {
			return true
		}
	}
	return false
}

// undominated drops every candidate that another candidate is preferred over.
// The preferences among cands must be acyclic, so at least one survives.
func (t *table[A, R]) undominated(cands []any) []any {
	var out []any
	for _, c := range cands {
		beaten := false
		for _, d := range cands {
			if !category.Equal(c, d) && t.prefers(d, c) {
				beaten = true
				break
			}
		}
		if !beaten {
			out = append(out, c)
		}
	}
	return out
}

// resolve picks the dispatch value and handler for key.
// The returned value is DefaultValue when the default handler applies.
func (t *table[A, R]) resolve(name string, key any, hierarchy func(key, registered any) bool) (any, Handler[A, R], error) {
	cands := t.candidates(key, hierarchy)
	if len(cands) == 0 {
		if t.fallback != nil {
			return DefaultValue, t.fallback, nil
		}
		return nil, nil, &UnresolvedDispatchError{Name: name, Key: key}
	}

	winner, err := t.pick(name, key, cands)
	if err != nil {
		return nil, nil, err
	}
	h, _ := t.handler(winner)
	return winner, h, nil
}

func (t *table[A, R]) pick(name string, key any, cands []any) (any, error) {
	if len(cands) == 1 {
		return cands[0], nil
	}

	if t.cyclic(cands) {
		return nil, &AmbiguousDispatchError{Name: name, Key: key, Candidates: cands}
	}

	survivors := t.undominated(cands)
	if len(survivors) == 1 {
		return survivors[0], nil
	}

	var exact []any
	for _, s := range survivors {
		if category.Equal(key, s) {
			exact = append(exact, s)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	return nil, &AmbiguousDispatchError{Name: name, Key: key, Candidates: survivors}
}
