package perhaps

// Variant is the type-erased view of a Perhaps, whatever its type parameter.
type Variant interface {
	// Kind returns the discriminant
	Kind() Kind
	// Peek returns the value, the error or nil
	Peek() any
	// Err returns the captured failure, if any
	Err() error
}

var _ Variant = Perhaps[any]{}
