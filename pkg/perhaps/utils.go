package perhaps

import (
	"math"
	"math/cmplx"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

// IsNil reports whether i is nil or a typed nil of a nillable kind other
// than slice.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// IsEmptyValue is the presence classifier: nil, typed nil, zero-length
// strings and NaN are empty. Zero, false, slices of any length and
// non-nil errors are not.
func IsEmptyValue(v any) bool {
	if IsNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return cmplx.IsNaN(rv.Complex())
	}
	return false
}

// GetErrors flattens err into its members. Joined errors and
// *multierror.Error are expanded one level; nil yields an empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if me, ok := err.(*multierror.Error); ok {
		return me.WrappedErrors()
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func sequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv, false
	}
	k := rv.Kind()
	return rv, k == reflect.Slice || k == reflect.Array
}
