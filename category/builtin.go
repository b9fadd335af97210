package category

import "reflect"

// The closed set of categories built-in Go values belong to.
var (
	Object = &Category{name: "Object"}

	Iterable  = New("Iterable")
	Sized     = New("Sized")
	Container = New("Container")

	Sequence        = New("Sequence", Iterable, Sized, Container)
	MutableSequence = New("MutableSequence", Sequence)
	String          = New("String", Sequence)
	Bytes           = New("Bytes", MutableSequence)

	Mapping        = New("Mapping", Iterable, Sized, Container)
	MutableMapping = New("MutableMapping", Mapping)

	Set        = New("Set", Iterable, Sized, Container)
	MutableSet = New("MutableSet", Set)

	Number   = New("Number")
	Complex  = New("Complex", Number)
	Real     = New("Real", Complex)
	Integral = New("Integral", Real)
	Bool     = New("Bool", Integral)

	Nil     = New("Nil")
	Func    = New("Func")
	Chan    = New("Chan", Iterable, Sized)
	Pointer = New("Pointer")
	Struct  = New("Struct")
)

var emptyStruct = reflect.TypeOf(struct{}{})

// Of returns the runtime category of x.
//
// Members report their own category. A *Category is itself an Object.
// Built-in values map onto the closed tag set by kind:
// slices are MutableSequences, arrays Sequences, map[K]struct{} MutableSets,
// other maps MutableMappings.
func Of(x any) *Category {
	switch v := x.(type) {
	case nil:
		return Nil
	case Member:
		if c := v.Category(); c != nil {
			return c
		}
	case *Category:
		return Object
	case []byte:
		return Bytes
	}

	t := reflect.TypeOf(x)
	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integral
	case reflect.Float32, reflect.Float64:
		return Real
	case reflect.Complex64, reflect.Complex128:
		return Complex
	case reflect.String:
		return String
	case reflect.Slice:
		return MutableSequence
	case reflect.Array:
		return Sequence
	case reflect.Map:
		if t.Elem() == emptyStruct {
			return MutableSet
		}
		return MutableMapping
	case reflect.Func:
		return Func
	case reflect.Chan:
		return Chan
	case reflect.Pointer, reflect.UnsafePointer:
		return Pointer
	case reflect.Struct:
		return Struct
	default:
		return Object
	}
}
