package category

import "reflect"

// Isa is the generalized instance/equality predicate.
//
// It holds when x equals spec, when spec is a *Category and x is a member
// of it, or when x is itself a *Category below spec.
//
//	Isa("foo", "foo")                  // true
//	Isa(map[string]int{}, Mapping)     // true
//	Isa(MutableMapping, Iterable)      // true
func Isa(x, spec any) bool {
	if Equal(x, spec) {
		return true
	}
	c, ok := spec.(*Category)
	if !ok || c == nil {
		return false
	}
	if xc, ok := x.(*Category); ok {
		return xc.IsA(c)
	}
	return Of(x).IsA(c)
}

// Equal reports whether x and y are the same value.
// Comparable values use ==, so pointers and categories compare by identity;
// maps, slices and funcs compare deeply.
func Equal(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	tx := reflect.TypeOf(x)
	if tx != reflect.TypeOf(y) {
		return false
	}
	if tx.Comparable() {
		return comparableEqual(x, y)
	}
	return reflect.DeepEqual(x, y)
}

// comparableEqual falls back to deep equality when == panics on
// interface fields holding non-comparable values.
func comparableEqual(x, y any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = reflect.DeepEqual(x, y)
		}
	}()
	return x == y
}
