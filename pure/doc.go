// Package pure provides small, stateless helpers for building functions out
// of other functions.
//
// Every helper here is pure: it holds no shared state, performs no I/O and has
// no failure mode of its own. Whatever the wrapped functions return or panic
// with is passed straight through.
//
// Composition comes in three orders:
//
//	Pipeline(f, g, h)(x) == h(g(f(x)))  // left to right, deferred
//	Thread(x, f, g, h)   == h(g(f(x)))  // left to right, eager
//	Compose(f, g, h)(x)  == f(g(h(x)))  // right to left, deferred
//
// Partial application prepends bound arguments, RPartial appends them:
//
//	RPartialI2O1(pow, 4)(2) == pow(2, 4)
//
// The arity-suffixed variants (I2O1 = two inputs, one output) keep the bound
// function fully typed.
package pure
