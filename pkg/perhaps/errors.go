package perhaps

import "errors"

var (
	// ErrNilFailure stands in for a nil error passed to Fail.
	ErrNilFailure = errors.New("perhaps: failure without error")
	// ErrTypeMismatch is wrapped when Normalize gets a value it cannot hold.
	ErrTypeMismatch = errors.New("perhaps: value type mismatch")
	// ErrIllegalInput is wrapped when a join gets a value outside the three variants.
	ErrIllegalInput = errors.New("perhaps: illegal junction input")
)
