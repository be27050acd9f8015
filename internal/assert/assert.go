// Package assert panics on programmer errors, ex. a component constructed
// without one of its dependencies. It is not for validating user input.
package assert

import "reflect"

// NotNil also catches a nil pointer, map, slice, func or chan stored in the
// interface, which a plain comparison with nil lets through.
func NotNil(value any) {
	if isNil(value) {
		panic("expected value to be not nil")
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
