package perhaps

// Map applies fn to the value of a Present and classifies the result with
// Of. Empty and Failure pass through with their type changed to U.
func Map[T, U any](p Perhaps[T], fn func(v T) (U, error)) Perhaps[U] {
	switch p.kind {
	case KindPresent:
		return From(func() (U, error) {
			return fn(p.value)
		})
	case KindFailure:
		return Fail[U](p.err)
	default:
		return Empty[U]()
	}
}

// Then applies fn to the value of a Present and returns its Perhaps
// unchanged.
func Then[T, U any](p Perhaps[T], fn func(v T) Perhaps[U]) Perhaps[U] {
	switch p.kind {
	case KindPresent:
		return Try(func() Perhaps[U] {
			return fn(p.value)
		})
	case KindFailure:
		return Fail[U](p.err)
	default:
		return Empty[U]()
	}
}

// Each calls fn for every element of a Present slice, stopping at the
// first error. On success p is returned unchanged.
func Each[S ~[]E, E any](p Perhaps[S], fn func(e E) error) Perhaps[S] {
	if p.kind != KindPresent {
		return p
	}
	for _, e := range p.value {
		if err := guard(func() error { return fn(e) }); err != nil {
			return Fail[S](err)
		}
	}
	return p
}

// MapEach applies fn to every element of a Present slice. An error
// short-circuits to Failure; results classified empty are dropped. With
// nothing collected the result is Empty.
func MapEach[S ~[]E, E, U any](p Perhaps[S], fn func(e E) (U, error)) Perhaps[[]U] {
	return MapEachThen(p, func(e E) Perhaps[U] {
		return From(func() (U, error) {
			return fn(e)
		})
	})
}

// MapEachThen is MapEach for element functions that return a Perhaps.
// A Failure short-circuits, an Empty is dropped and a Present contributes
// its value.
func MapEachThen[S ~[]E, E, U any](p Perhaps[S], fn func(e E) Perhaps[U]) Perhaps[[]U] {
	switch p.kind {
	case KindPresent:
	case KindFailure:
		return Fail[[]U](p.err)
	default:
		return Empty[[]U]()
	}

	collected := make([]U, 0, len(p.value))
	for _, e := range p.value {
		res := Try(func() Perhaps[U] { return fn(e) })
		switch res.kind {
		case KindFailure:
			return Fail[[]U](res.err)
		case KindPresent:
			collected = append(collected, res.value)
		}
	}

	if len(collected) == 0 {
		return Empty[[]U]()
	}
	return present(collected)
}

// Match reduces p to a U with the handler for its variant. A nil handler
// yields the zero U.
func Match[T, U any](p Perhaps[T],
	onPresent func(v T) U,
	onEmpty func() U,
	onFailure func(err error) U) U {

	var zero U
	switch p.kind {
	case KindPresent:
		if onPresent != nil {
			return onPresent(p.value)
		}
	case KindFailure:
		if onFailure != nil {
			return onFailure(p.err)
		}
	default:
		if onEmpty != nil {
			return onEmpty()
		}
	}
	return zero
}
