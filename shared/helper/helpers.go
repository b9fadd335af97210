package helper

import "fmt"

// GetTypedValueOf2 asserts the result of a comma-ok getter to the expected type T.
// ok is false when the getter misses or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// CollectTypedValuesOf drains an iterator of untyped values into a []T.
// Returns an error at the first value that is not a T.
func CollectTypedValuesOf[T any](done func() bool, next func() any) ([]T, error) {
	var out []T
	for !done() {
		raw := next()
		v, ok := raw.(T)
		if !ok {
			return nil, fmt.Errorf("unexpected type: %T", raw)
		}
		out = append(out, v)
	}
	return out, nil
}

// MustCollectTypedValues is the panic-on-failure variant of CollectTypedValuesOf.
// Use when every value is guaranteed to be a T.
func MustCollectTypedValues[T any](done func() bool, next func() any) []T {
	res, err := CollectTypedValuesOf[T](done, next)
	if err != nil {
		panic(err)
	}
	return res
}
