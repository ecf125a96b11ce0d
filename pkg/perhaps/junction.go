package perhaps

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Junction joins the values of inputs with join when every input is
// Present. Inputs are scanned left to right and the first Empty or Failure
// is returned as is, retyped to U. The join result is classified with Of;
// an error or panic from join becomes a Failure.
func Junction[T, U any](join func(values ...T) (U, error), inputs ...Perhaps[T]) Perhaps[U] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if blocked, ok := gate[U](in); ok {
			return blocked
		}
		values = append(values, in.value)
	}

	return From(func() (U, error) {
		return join(values...)
	})
}

// Junction2 is the two-input, mixed-type form of Junction.
func Junction2[A, B, U any](a Perhaps[A], b Perhaps[B], join func(a A, b B) (U, error)) Perhaps[U] {
	if blocked, ok := gate[U](a, b); ok {
		return blocked
	}
	return From(func() (U, error) {
		return join(a.value, b.value)
	})
}

// Junction3 is the three-input, mixed-type form of Junction.
func Junction3[A, B, C, U any](a Perhaps[A], b Perhaps[B], c Perhaps[C],
	join func(a A, b B, c C) (U, error)) Perhaps[U] {

	if blocked, ok := gate[U](a, b, c); ok {
		return blocked
	}
	return From(func() (U, error) {
		return join(a.value, b.value, c.value)
	})
}

// All collects the values of inputs in order. Like Junction it stops at the
// first Empty or Failure. No inputs yields a Present empty slice.
func All[T any](inputs ...Perhaps[T]) Perhaps[[]T] {
	return Junction(func(values ...T) ([]T, error) {
		return values, nil
	}, inputs...)
}

// UnwrapAll returns the Present values of inputs in order, skipping Empty.
// Unlike Junction it does not stop early: every Failure is gathered into
// one *multierror.Error.
func UnwrapAll[T any](inputs ...Perhaps[T]) ([]T, error) {
	values := make([]T, 0, len(inputs))
	var errs *multierror.Error

	for _, in := range inputs {
		switch in.kind {
		case KindPresent:
			values = append(values, in.value)
		case KindFailure:
			errs = multierror.Append(errs, in.err)
		case KindEmpty:
		default:
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrIllegalInput, in.kind))
		}
	}

	return values, errs.ErrorOrNil()
}

// gate returns the first input that is not Present, retyped to U.
func gate[U any](inputs ...Variant) (Perhaps[U], bool) {
	for _, in := range inputs {
		switch k := in.Kind(); k {
		case KindPresent:
		case KindEmpty:
			return Empty[U](), true
		case KindFailure:
			return Fail[U](in.Err()), true
		default:
			return Fail[U](fmt.Errorf("%w: %s", ErrIllegalInput, k)), true
		}
	}
	return Perhaps[U]{}, false
}
