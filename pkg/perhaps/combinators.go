package perhaps

// Catch hands the failure of a Failure to handler and normalizes what it
// returns the way From does. Empty and Present are returned unchanged.
func (p Perhaps[T]) Catch(handler func(err error) (T, error)) Perhaps[T] {
	if p.kind != KindFailure {
		return p
	}
	return From(func() (T, error) {
		return handler(p.err)
	})
}

// Recover is Catch for handlers that already return a Perhaps.
func (p Perhaps[T]) Recover(handler func(err error) Perhaps[T]) Perhaps[T] {
	if p.kind != KindFailure {
		return p
	}
	return Try(func() Perhaps[T] {
		return handler(p.err)
	})
}

// ForOne calls fn once with the whole value, even when it is a slice.
// A returned error or panic turns the result into a Failure; otherwise
// p is returned unchanged.
func (p Perhaps[T]) ForOne(fn func(v T) error) Perhaps[T] {
	if p.kind != KindPresent {
		return p
	}
	if err := guard(func() error { return fn(p.value) }); err != nil {
		return Fail[T](err)
	}
	return p
}

// ForEach calls fn for every element when the value is a slice or an
// array, stopping at the first error, and once with the value otherwise.
// Return values of fn are discarded; on success p is returned unchanged.
func (p Perhaps[T]) ForEach(fn func(v any) error) Perhaps[T] {
	if p.kind != KindPresent {
		return p
	}

	rv, ok := sequence(p.value)
	if !ok {
		if err := guard(func() error { return fn(p.value) }); err != nil {
			return Fail[T](err)
		}
		return p
	}

	for i, n := 0, rv.Len(); i < n; i++ {
		elem := rv.Index(i).Interface()
		if err := guard(func() error { return fn(elem) }); err != nil {
			return Fail[T](err)
		}
	}
	return p
}

// Map transforms the whole value, even when it is a slice. The result is
// classified with Of, so an empty result yields Empty.
func (p Perhaps[T]) Map(fn func(v T) (T, error)) Perhaps[T] {
	return Map(p, fn)
}

// MapEach fans fn out over the elements of a slice or array value.
// A failing element short-circuits to Failure, empty results are dropped,
// Present results contribute their value. With no contributions the
// result is Empty. A non-sequence value is passed to fn whole, as Map.
func (p Perhaps[T]) MapEach(fn func(v any) (any, error)) Perhaps[any] {
	switch p.kind {
	case KindPresent:
	case KindFailure:
		return Fail[any](p.err)
	default:
		return Empty[any]()
	}

	rv, ok := sequence(p.value)
	if !ok {
		r, err := capture(func() (any, error) { return fn(p.value) })
		if err != nil {
			return Fail[any](err)
		}
		return Normalize[any](r)
	}

	collected := make([]any, 0, rv.Len())
	for i, n := 0, rv.Len(); i < n; i++ {
		elem := rv.Index(i).Interface()
		r, err := capture(func() (any, error) { return fn(elem) })
		if err != nil {
			return Fail[any](err)
		}

		res := Normalize[any](r)
		switch res.kind {
		case KindFailure:
			return res
		case KindPresent:
			collected = append(collected, res.value)
		}
	}

	if len(collected) == 0 {
		return Empty[any]()
	}
	return Of[any](collected)
}

// Or returns p when Present and Of(alt) otherwise.
func (p Perhaps[T]) Or(alt T) Perhaps[T] {
	if p.kind == KindPresent {
		return p
	}
	return Of(alt)
}

// OrFrom returns p when Present and From(fn) otherwise. fn is not called
// for Present.
func (p Perhaps[T]) OrFrom(fn func() (T, error)) Perhaps[T] {
	if p.kind == KindPresent {
		return p
	}
	return From(fn)
}

// OrElse is OrFrom for alternatives that already return a Perhaps.
func (p Perhaps[T]) OrElse(fn func() Perhaps[T]) Perhaps[T] {
	if p.kind == KindPresent {
		return p
	}
	return Try(fn)
}

// Inspect calls fn with p, whatever its variant, and returns p.
func (p Perhaps[T]) Inspect(fn func(v Variant)) Perhaps[T] {
	if fn != nil {
		fn(p)
	}
	return p
}
