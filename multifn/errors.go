package multifn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnresolvedDispatch = errors.New("unresolved dispatch")
	ErrAmbiguousDispatch  = errors.New("ambiguous dispatch")
	ErrPreferenceConflict = errors.New("conflicting preferences")
)

// UnresolvedDispatchError reports that no registered value matched Key and
// no default handler was set.
type UnresolvedDispatchError struct {
	Name string
	Key  any
}

func (e *UnresolvedDispatchError) Error() string {
	return fmt.Sprintf("%v: %s has no method for dispatch value %s and no default",
		ErrUnresolvedDispatch, e.Name, formatValue(e.Key))
}

func (e *UnresolvedDispatchError) Unwrap() error { return ErrUnresolvedDispatch }

// AmbiguousDispatchError reports the candidates left tied for Key after
// preferences were applied. Declaring a preference between them fixes it.
type AmbiguousDispatchError struct {
	Name       string
	Key        any
	Candidates []any
}

func (e *AmbiguousDispatchError) Error() string {
	return fmt.Sprintf("%v: %s has several methods for dispatch value %s and none is preferred: %s",
		ErrAmbiguousDispatch, e.Name, formatValue(e.Key), formatValues(e.Candidates))
}

func (e *AmbiguousDispatchError) Unwrap() error { return ErrAmbiguousDispatch }

// PreferenceConflictError reports that A was preferred over B and B over A.
type PreferenceConflictError struct {
	Name string
	A, B any
}

func (e *PreferenceConflictError) Error() string {
	return fmt.Sprintf("%v: %s prefers both %s over %s and %s over %s",
		ErrPreferenceConflict, e.Name, formatValue(e.A), formatValue(e.B), formatValue(e.B), formatValue(e.A))
}

func (e *PreferenceConflictError) Unwrap() error { return ErrPreferenceConflict }

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatValues(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
