package perhaps

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PanicError is the failure captured from a callback that panicked.
type PanicError struct {
	// ID identifies this recovery so it can be matched across logs
	ID uuid.UUID
	// Value is what was passed to panic
	Value any
	stack error
}

func newPanicError(r any) *PanicError {
	var stack error
	if err, ok := r.(error); ok {
		stack = errors.WithStack(err)
	} else {
		stack = errors.Errorf("%v", r)
	}
	return &PanicError{
		ID:    uuid.New(),
		Value: r,
		stack: stack,
	}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("perhaps: recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace returns the frames recorded at recovery.
func (e *PanicError) StackTrace() errors.StackTrace {
	if st, ok := e.stack.(interface{ StackTrace() errors.StackTrace }); ok {
		return st.StackTrace()
	}
	return nil
}

// Format prints the stack trace with %+v.
func (e *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s [%s]%+v", e.Error(), e.ID, e.StackTrace())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		fmt.Fprint(s, e.Error())
	}
}
