package perhaps

import (
	"fmt"
	"reflect"
)

// Of classifies v: Empty when IsEmptyValue(v), Present otherwise. When T
// is an interface type and v holds a Perhaps, v keeps its own variant
// instead of being wrapped again.
func Of[T any](v T) Perhaps[T] {
	if w, ok := any(v).(Variant); ok && reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface {
		return Normalize[T](w)
	}
	if IsEmptyValue(v) {
		return Empty[T]()
	}
	return present(v)
}

// Normalize maps a raw value or an existing Perhaps onto Perhaps[T].
// A Perhaps[T] is returned unchanged. A Perhaps of another type keeps its
// variant; its value, if any, is normalized again. A raw value that is
// neither empty nor a T becomes a Failure wrapping ErrTypeMismatch.
func Normalize[T any](v any) Perhaps[T] {
	switch w := v.(type) {
	case Perhaps[T]:
		return w
	case Variant:
		return retag[T](w)
	}

	if IsEmptyValue(v) {
		return Empty[T]()
	}

	if t, ok := v.(T); ok {
		return present(t)
	}

	return Fail[T](fmt.Errorf("%w: got %T, want %s", ErrTypeMismatch, v, reflect.TypeOf((*T)(nil)).Elem()))
}

func retag[T any](w Variant) Perhaps[T] {
	switch w.Kind() {
	case KindEmpty:
		return Empty[T]()
	case KindFailure:
		return Fail[T](w.Err())
	case KindPresent:
		return Normalize[T](w.Peek())
	default:
		return Fail[T](fmt.Errorf("%w: %s", ErrIllegalInput, w.Kind()))
	}
}
