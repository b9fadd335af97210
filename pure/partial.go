package pure

// Partial binds leading arguments of a variadic function.
func Partial[T, R any](f func(...T) R, bound ...T) func(...T) R {
	return func(args ...T) R {
		all := make([]T, 0, len(bound)+len(args))
		all = append(all, bound...)
		return f(append(all, args...)...)
	}
}

// RPartial binds trailing arguments of a variadic function:
// later-supplied arguments come first.
func RPartial[T, R any](f func(...T) R, bound ...T) func(...T) R {
	return func(args ...T) R {
		all := make([]T, 0, len(args)+len(bound))
		all = append(all, args...)
		return f(append(all, bound...)...)
	}
}

func PartialI2O1[I1, I2, O1 any](f func(I1, I2) O1, i1 I1) func(I2) O1 {
	return func(i2 I2) O1 {
		return f(i1, i2)
	}
}

func PartialI3O1[I1, I2, I3, O1 any](f func(I1, I2, I3) O1, i1 I1) func(I2, I3) O1 {
	return func(i2 I2, i3 I3) O1 {
		return f(i1, i2, i3)
	}
}

func PartialI2O2[I1, I2, O1, O2 any](f func(I1, I2) (O1, O2), i1 I1) func(I2) (O1, O2) {
	return func(i2 I2) (O1, O2) {
		return f(i1, i2)
	}
}

// RPartialI2O1 binds the last argument: RPartialI2O1(f, b)(a) == f(a, b).
func RPartialI2O1[I1, I2, O1 any](f func(I1, I2) O1, i2 I2) func(I1) O1 {
	return func(i1 I1) O1 {
		return f(i1, i2)
	}
}

func RPartialI3O1[I1, I2, I3, O1 any](f func(I1, I2, I3) O1, i3 I3) func(I1, I2) O1 {
	return func(i1 I1, i2 I2) O1 {
		return f(i1, i2, i3)
	}
}

func RPartialI2O2[I1, I2, O1, O2 any](f func(I1, I2) (O1, O2), i2 I2) func(I1) (O1, O2) {
	return func(i1 I1) (O1, O2) {
		return f(i1, i2)
	}
}
