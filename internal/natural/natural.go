// Package natural discovers the natural ordering of arbitrary element types.
//
// A type has a natural ordering when it is one of Go's ordered kinds (signed
// and unsigned integers, floats and strings, including named types over them)
// or when it has a method Compare(other T) int. Interface element types are
// resolved per element from their dynamic types.
package natural

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
)

// ErrNotComparable is returned when no natural ordering exists for the elements.
var ErrNotComparable = errors.New("elements have no natural ordering")

// Comparer is implemented by types that define their own ordering.
type Comparer[T any] interface {
	Compare(other T) int
}

// Comparator returns a three-way comparison function implementing the natural
// ordering of elements.
//
// Parameters:
//   - elements: The elements that will be compared; only inspected when E is an interface type
//
// Returns:
//   - func(a, b E) int: Comparison returning <0, 0 or >0
//   - error: ErrNotComparable (wrapped) when E has no natural ordering
func Comparator[E any](elements []E) (func(a, b E) int, error) {
	var zero E
	if _, ok := any(zero).(Comparer[E]); ok {
		return func(a, b E) int {
			return any(a).(Comparer[E]).Compare(b)
		}, nil
	}

	typ := reflect.TypeFor[E]()
	if typ.Kind() != reflect.Interface {
		if !ordered(typ.Kind()) {
			return nil, fmt.Errorf("%w: %s", ErrNotComparable, typ)
		}

		return func(a, b E) int {
			return compareValues(reflect.ValueOf(a), reflect.ValueOf(b))
		}, nil
	}

	return dynamicComparator(elements)
}

// Dynamic reports whether the natural ordering of E can only be resolved from
// element values, which is the case for interface types without a Compare method.
func Dynamic[E any]() bool {
	var zero E
	if _, ok := any(zero).(Comparer[E]); ok {
		return false
	}

	return reflect.TypeFor[E]().Kind() == reflect.Interface
}

// dynamicComparator handles interface element types. All elements must share
// one dynamic type, and that type must have a Compare method or be ordered.
func dynamicComparator[E any](elements []E) (func(a, b E) int, error) {
	var dynamic reflect.Type
	for i, e := range elements {
		v := reflect.ValueOf(e)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: nil element at index %d", ErrNotComparable, i)
		}
		if dynamic == nil {
			dynamic = v.Type()
			continue
		}
		if v.Type() != dynamic {
			return nil, fmt.Errorf("%w: mixed element types %s and %s", ErrNotComparable, dynamic, v.Type())
		}
	}

	if dynamic == nil {
		return nil, fmt.Errorf("%w: no elements", ErrNotComparable)
	}

	// A Compare method takes precedence over the underlying kind, matching the
	// static path in Comparator.
	if method, ok := dynamic.MethodByName("Compare"); ok && isCompareMethod(method.Type, dynamic) {
		return func(a, b E) int {
			out := reflect.ValueOf(a).MethodByName("Compare").Call([]reflect.Value{reflect.ValueOf(b)})
			return int(out[0].Int())
		}, nil
	}

	if !ordered(dynamic.Kind()) {
		return nil, fmt.Errorf("%w: %s", ErrNotComparable, dynamic)
	}

	return func(a, b E) int {
		return compareValues(reflect.ValueOf(a), reflect.ValueOf(b))
	}, nil
}

// isCompareMethod reports whether m is func(T, U) int, receiver included,
// where T is assignable to U. U is T itself or an interface T implements.
func isCompareMethod(m reflect.Type, t reflect.Type) bool {
	return m.NumIn() == 2 && t.AssignableTo(m.In(1)) &&
		m.NumOut() == 1 && m.Out(0).Kind() == reflect.Int
}

func ordered(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

// compareValues compares two values of the same ordered kind with cmp.Compare
// semantics (NaN sorts before every other float).
func compareValues(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	default:
		panic("natural: unordered kind " + a.Kind().String())
	}
}
