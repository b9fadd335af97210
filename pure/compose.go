package pure

// Pipeline returns a function applying fns from left to right.
// With no fns it returns its input unchanged.
func Pipeline[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		return Thread(x, fns...)
	}
}

// Thread eagerly applies fns to x from left to right.
func Thread[T any](x T, fns ...func(T) T) T {
	for _, fn := range fns {
		x = fn(x)
	}
	return x
}

// Compose returns a function applying fns from right to left,
// so Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

// Then chains two functions whose types differ: Then(f, g)(x) == g(f(x)).
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

func Identity[T any](x T) T {
	return x
}
