package perhaps

// From calls fn once. A returned error or a panic becomes a Failure;
// otherwise the result is classified with Of.
func From[T any](fn func() (T, error)) Perhaps[T] {
	v, err := capture(fn)
	if err != nil {
		return Fail[T](err)
	}
	return Of(v)
}

// Try calls fn once and returns its Perhaps unchanged. A panic becomes a
// Failure.
func Try[T any](fn func() Perhaps[T]) Perhaps[T] {
	v, err := capture(func() (Perhaps[T], error) {
		return fn(), nil
	})
	if err != nil {
		return Fail[T](err)
	}
	return v
}

func capture[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, newPanicError(r)
		}
	}()
	return fn()
}

func guard(fn func() error) error {
	_, err := capture(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
