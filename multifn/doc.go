// Package multifn implements multiple dispatch: a MultiFn routes each call to
// one of several handlers, chosen by a dispatch value computed from the call's
// argument.
//
// Handlers are registered against dispatch values. A registered value matches a
// call when it equals the computed key, or when the key belongs to it in the
// category hierarchy (see package category). When several registered values
// match, declared preferences decide; if they cannot, an exact match of the key
// wins over hierarchy matches; anything still tied is reported as an
// AmbiguousDispatchError instead of being guessed.
//
//	noise := multifn.New[map[string]string, string](
//		multifn.KeyOf(pure.RPartialI2O1(pure.Get[string, string], "animal")),
//	)
//	noise.Method("cow", func(map[string]string) (string, error) { return "moo", nil })
//	noise.Method(nil, func(map[string]string) (string, error) { return "*silence*", nil })
//	noise.Default(func(map[string]string) (string, error) { return "crickets", nil })
//
//	noise.Call(map[string]string{"animal": "cow"})    // "moo"
//	noise.Call(map[string]string{"object": "rock"})   // "*silence*"
//	noise.Call(map[string]string{"animal": "donkey"}) // "crickets"
//
// A MultiFn has no global instance: construct one and pass it to whoever needs it.
// Registrations and calls may interleave from multiple goroutines; every call
// resolves against a consistent snapshot of the registrations made before it.
package multifn
