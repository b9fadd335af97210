package multifn_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/multi_ive_go/category"
	"github.com/on-the-ground/multi_ive_go/internal/testlog"
	"github.com/on-the-ground/multi_ive_go/multifn"
	"github.com/on-the-ground/multi_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type animalMap = map[string]string

func says(s string) multifn.Handler[animalMap, string] {
	return func(animalMap) (string, error) { return s, nil }
}

func newNoiseByValue(t *testing.T) *multifn.MultiFn[animalMap, string] {
	t.Helper()
	noise := multifn.New[animalMap, string](
		multifn.KeyOf(pure.RPartialI2O1(pure.Get[string, string], "animal")),
		multifn.WithName("noise"),
		multifn.WithLogger(testlog.New()),
	)
	noise.Method("cow", says("moo"))
	noise.Method("dog", says("woof"))
	noise.Method(nil, says("*silence*"))
	noise.Default(says("crickets"))
	return noise
}

func TestMultiFn_Values(t *testing.T) {
	noise := newNoiseByValue(t)

	cases := []struct {
		arg  animalMap
		want string
	}{
		{animalMap{"animal": "cow"}, "moo"},
		{animalMap{"animal": "dog"}, "woof"},
		{animalMap{"object": "rock"}, "*silence*"},
		{animalMap{"animal": "donkey"}, "crickets"},
	}
	for _, tc := range cases {
		got, err := noise.Call(tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.arg)
	}
}

var (
	animal = category.New("Animal")
	cow    = category.New("Cow", animal)
	dog    = category.New("Dog", animal)
	cat    = category.New("Cat", animal)
)

type creature struct {
	kind *category.Category
}

func (c creature) Category() *category.Category { return c.kind }

type rock struct{}

func newNoiseByCategory(t *testing.T) *multifn.MultiFn[any, string] {
	t.Helper()
	noise := multifn.New[any, string](
		multifn.KeyOf(category.Of),
		multifn.WithName("noise"),
		multifn.WithLogger(testlog.New()),
	)
	say := func(s string) multifn.Handler[any, string] {
		return func(any) (string, error) { return s, nil }
	}
	noise.Method(cow, say("moo"))
	noise.Method(dog, say("woof"))
	noise.Method(animal, say("animal noise here"))
	noise.Default(say("no noise"))
	return noise
}

func TestMultiFn_Categories(t *testing.T) {
	noise := newNoiseByCategory(t)

	cases := []struct {
		arg  any
		want string
	}{
		{creature{cow}, "moo"},
		{creature{dog}, "woof"},
		{creature{cat}, "animal noise here"},
		{rock{}, "no noise"},
	}
	for _, tc := range cases {
		got, err := noise.Call(tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	noise.Prefer(animal, dog)
	for range 3 {
		got, err := noise.Call(creature{dog})
		require.NoError(t, err)
		assert.Equal(t, "animal noise here", got)
	}

	got, err := noise.Call(creature{cow})
	require.NoError(t, err)
	assert.Equal(t, "moo", got)
}

func TestMultiFn_NilIsFirstClassValue(t *testing.T) {
	m := multifn.New[animalMap, string](multifn.KeyOf(func(animalMap) any { return nil }))
	m.Default(says("default"))
	m.Method(nil, says("nil"))

	got, err := m.Call(animalMap{})
	require.NoError(t, err)
	assert.Equal(t, "nil", got)
}

func TestMultiFn_DefaultRunsRegardlessOfArgument(t *testing.T) {
	m := multifn.New[any, string](multifn.KeyOf(pure.Identity[any]))
	m.Method("known", func(any) (string, error) { return "known", nil })
	m.Default(func(any) (string, error) { return "default", nil })

	for _, arg := range []any{nil, 1, "unknown", []int{1}, map[string]int{}, rock{}} {
		got, err := m.Call(arg)
		require.NoError(t, err)
		assert.Equal(t, "default", got, "%v", arg)
	}
}

func TestMultiFn_Unresolved(t *testing.T) {
	m := multifn.New[animalMap, string](
		multifn.KeyOf(pure.RPartialI2O1(pure.Get[string, string], "animal")),
		multifn.WithName("noise"),
	)
	m.Method("cow", says("moo"))

	_, err := m.Call(animalMap{"animal": "donkey"})
	require.Error(t, err)
	assert.ErrorIs(t, err, multifn.ErrUnresolvedDispatch)

	var unresolved *multifn.UnresolvedDispatchError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "donkey", unresolved.Key)
	assert.Contains(t, err.Error(), `"donkey"`)
	assert.Contains(t, err.Error(), "noise")

	m.Default(says("crickets"))
	got, err := m.Call(animalMap{"animal": "donkey"})
	require.NoError(t, err)
	assert.Equal(t, "crickets", got)

	m.ClearDefault()
	assert.False(t, m.HasDefault())
	_, err = m.Call(animalMap{"animal": "donkey"})
	assert.ErrorIs(t, err, multifn.ErrUnresolvedDispatch)
}

func TestMultiFn_ErrorsPropagateUnmodified(t *testing.T) {
	errKey := errors.New("no key")
	errHandler := errors.New("handler failed")

	m := multifn.New[int, string](func(n int) (any, error) {
		if n < 0 {
			return nil, errKey
		}
		return n, nil
	})
	m.Method(1, func(int) (string, error) { return "", errHandler })

	_, err := m.Call(-1)
	assert.Same(t, errKey, err)

	_, err = m.Call(1)
	assert.Same(t, errHandler, err)
}

func TestMultiFn_HandlerReceivesOriginalArgument(t *testing.T) {
	type request struct {
		Kind string
		Body []int
	}
	m := multifn.New[request, int](multifn.KeyOf(func(r request) any { return r.Kind }))
	m.Method("sum", func(r request) (int, error) {
		total := 0
		for _, n := range r.Body {
			total += n
		}
		return total, nil
	})

	got, err := m.Call(request{Kind: "sum", Body: []int{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestMultiFn_MethodReturnsHandler(t *testing.T) {
	m := multifn.New[animalMap, string](multifn.KeyOf(pure.RPartialI2O1(pure.Get[string, string], "animal")))
	cowNoise := m.Method("cow", says("moo"))

	got, err := cowNoise(nil)
	require.NoError(t, err)
	assert.Equal(t, "moo", got)

	h, ok := m.Handler("cow")
	require.True(t, ok)
	got, err = h(nil)
	require.NoError(t, err)
	assert.Equal(t, "moo", got)
}

func TestMultiFn_ReregisterOverwritesAndKeepsOrder(t *testing.T) {
	m := multifn.New[animalMap, string](multifn.KeyOf(pure.RPartialI2O1(pure.Get[string, string], "animal")))
	m.Method("cow", says("moo"))
	m.Method("dog", says("woof"))
	m.Method("cow", says("MOO"))

	assert.Equal(t, []any{"cow", "dog"}, m.Methods())
	got, err := m.Call(animalMap{"animal": "cow"})
	require.NoError(t, err)
	assert.Equal(t, "MOO", got)
}

func TestMultiFn_RemoveMethod(t *testing.T) {
	m := newNoiseByValue(t)

	assert.True(t, m.RemoveMethod("cow"))
	assert.False(t, m.RemoveMethod("cow"))
	assert.Equal(t, []any{"dog", nil}, m.Methods())

	got, err := m.Call(animalMap{"animal": "cow"})
	require.NoError(t, err)
	assert.Equal(t, "crickets", got)
}

func TestMultiFn_RegisterAfterCalls(t *testing.T) {
	m := newNoiseByValue(t)

	got, err := m.Call(animalMap{"animal": "donkey"})
	require.NoError(t, err)
	assert.Equal(t, "crickets", got)

	m.Method("donkey", says("hee-haw"))
	got, err = m.Call(animalMap{"animal": "donkey"})
	require.NoError(t, err)
	assert.Equal(t, "hee-haw", got)
}

func TestMultiFn_NonComparableDispatchValues(t *testing.T) {
	m := multifn.New[[]string, string](multifn.KeyOf(func(xs []string) any { return xs }))
	m.Method([]string{"a", "b"}, func([]string) (string, error) { return "ab", nil })
	m.Method(category.Sequence, func([]string) (string, error) { return "some sequence", nil })

	got, err := m.Call([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "ab", got)

	got, err = m.Call([]string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, "some sequence", got)
}

func TestNew_PanicsOnNilKeyFunc(t *testing.T) {
	assert.Panics(t, func() {
		multifn.New[int, int](nil)
	})
}

func TestMethod_PanicsOnNilHandler(t *testing.T) {
	m := multifn.New[int, int](multifn.KeyOf(func(n int) any { return n }))
	assert.Panics(t, func() { m.Method(1, nil) })
	assert.Panics(t, func() { m.Default(nil) })
}

func TestMultiFn_NameFallsBackToId(t *testing.T) {
	m := multifn.New[int, int](multifn.KeyOf(func(n int) any { return n }))
	assert.NotEmpty(t, m.Id)
	assert.Equal(t, m.Id, m.Name())

	other := multifn.New[int, int](multifn.KeyOf(func(n int) any { return n }))
	assert.NotEqual(t, m.Id, other.Id)
}
