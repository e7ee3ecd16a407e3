package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert performs a best-effort conversion of the input value into the type
// pointed to by outPtr.
//
// Fast-path: when input is already assignable to the destination element type
// it is copied directly. Otherwise Convert falls back to a JSON marshal/
// unmarshal round-trip which handles the majority of map/struct cases without
// reflection heavy field walking at the call-site.
//
// A nil input leaves outPtrʼs value untouched (zero value).
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}

	if in == nil {
		return nil // leave zero value
	}

	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}

	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outPtr)
}

func Pointer[T any](value T) *T {
	return &value
}

func Dereference[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
