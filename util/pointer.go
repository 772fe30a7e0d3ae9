package util

import (
	"reflect"

	"github.com/napalu/goargs/errs"
)

// UnwrapValue follows pointers until it reaches a non-pointer value. A nil pointer anywhere on the way
// yields ErrNilPointer.
func UnwrapValue(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, errs.ErrNilPointer.WithArgs(v.Type().String())
		}
		v = v.Elem()
	}

	return v, nil
}

// UnwrapType follows pointer types until it reaches a non-pointer type
func UnwrapType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
