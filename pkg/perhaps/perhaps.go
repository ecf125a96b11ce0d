package perhaps

import "fmt"

// Perhaps holds exactly one of: nothing (Empty), a failure (Failure) or a
// value (Present). The zero value is Empty.
type Perhaps[T any] struct {
	kind  Kind
	value T
	err   error
}

// Empty returns the payload-free Empty variant.
func Empty[T any]() Perhaps[T] {
	return Perhaps[T]{}
}

// Fail wraps err as a Failure. A nil err is replaced by ErrNilFailure.
func Fail[T any](err error) Perhaps[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Perhaps[T]{
		kind: KindFailure,
		err:  err,
	}
}

func present[T any](v T) Perhaps[T] {
	return Perhaps[T]{
		kind:  KindPresent,
		value: v,
	}
}

func (p Perhaps[T]) Kind() Kind {
	return p.kind
}

func (p Perhaps[T]) IsEmpty() bool {
	return p.kind == KindEmpty
}

func (p Perhaps[T]) IsFailure() bool {
	return p.kind == KindFailure
}

func (p Perhaps[T]) IsPresent() bool {
	return p.kind == KindPresent
}

// Err returns the captured failure, or nil for Empty and Present.
func (p Perhaps[T]) Err() error {
	if p.kind == KindFailure {
		return p.err
	}
	return nil
}

// Peek returns the value for Present, the error for Failure (without
// raising it) and nil for Empty.
func (p Perhaps[T]) Peek() any {
	switch p.kind {
	case KindPresent:
		return p.value
	case KindFailure:
		return p.err
	default:
		return nil
	}
}

// Unwrap returns the value for Present, the zero T for Empty, and the
// captured error for Failure.
func (p Perhaps[T]) Unwrap() (T, error) {
	var zero T
	switch p.kind {
	case KindPresent:
		return p.value, nil
	case KindFailure:
		return zero, p.err
	default:
		return zero, nil
	}
}

// MustUnwrap is like Unwrap but panics with the captured error on Failure.
func (p Perhaps[T]) MustUnwrap() T {
	v, err := p.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// UnwrapOr returns the value for Present and alt, as given, otherwise.
func (p Perhaps[T]) UnwrapOr(alt T) T {
	if p.kind == KindPresent {
		return p.value
	}
	return alt
}

// UnwrapOrErr returns the value for Present. Empty and Failure both
// return err, whatever the original failure was.
func (p Perhaps[T]) UnwrapOrErr(err error) (T, error) {
	if p.kind == KindPresent {
		return p.value, nil
	}
	var zero T
	return zero, err
}

func (p Perhaps[T]) String() string {
	switch p.kind {
	case KindPresent:
		return fmt.Sprintf("Present(%v)", p.value)
	case KindFailure:
		return fmt.Sprintf("Failure(%v)", p.err)
	default:
		return p.kind.String()
	}
}
