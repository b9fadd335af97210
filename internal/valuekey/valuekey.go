// Package valuekey hashes arbitrary dispatch values so they can key
// persistent maps, including nil and non-comparable values such as maps
// and slices.
package valuekey

import (
	"math"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/multi_ive_go/category"
)

// Hasher satisfies immutable.Hasher. Equality is category.Equal.
type Hasher struct{}

// Hash returns a digest consistent with category.Equal: equal values always
// share a digest. Only scalars and pointers contribute their contents;
// composite values hash by type alone and are told apart by Equal.
func (Hasher) Hash(key any) uint32 {
	return uint32(Sum64(key))
}

func (Hasher) Equal(a, b any) bool {
	return category.Equal(a, b)
}

func Sum64(key any) uint64 {
	if key == nil {
		return xxhash.Sum64String("<nil>")
	}

	d := xxhash.New()
	v := reflect.ValueOf(key)
	_, _ = d.WriteString(v.Type().String())
	_, _ = d.WriteString("|")

	switch v.Kind() {
	case reflect.String:
		_, _ = d.WriteString(v.String())
	case reflect.Bool:
		_, _ = d.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, _ = d.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, _ = d.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		_, _ = d.WriteString(formatFloat(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		_, _ = d.WriteString(formatFloat(real(c)))
		_, _ = d.WriteString(formatFloat(imag(c)))
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		_, _ = d.WriteString(strconv.FormatUint(uint64(v.Pointer()), 16))
	}
	return d.Sum64()
}

// formatFloat maps -0 onto 0, which == treats as equal.
func formatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
