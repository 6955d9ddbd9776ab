package unr

import (
	"fmt"
)

type (
	ErrUnresolvableReference struct {
		Caller    string
		Reference int32
		Cause     error
	}
	ErrRequiredObjectNotFound struct {
		Caller     string
		ObjectName string
		ClassName  string
	}
	ErrNotPackage struct {
		Caller   string
		FileName string
	}
	ErrInvalidIndex struct {
		Caller string
		Table  string
		Index  int32
		Size   int
	}
)

func (r ErrUnresolvableReference) Error() string {
	msg := fmt.Sprintf("%s: unresolvable object reference %d", r.Caller, r.Reference)
	if r.Cause != nil {
		msg += ": " + r.Cause.Error()
	}
	return msg
}

func (r ErrUnresolvableReference) Unwrap() error {
	return r.Cause
}

func (r ErrRequiredObjectNotFound) Error() string {
	return fmt.Sprintf("%s: %s[%s] not found", r.Caller, r.ObjectName, r.ClassName)
}

func (r ErrInvalidIndex) Error() string {
	return fmt.Sprintf("%s: %s index %d out of range [0, %d)", r.Caller, r.Table, r.Index, r.Size)
}

func (r ErrNotPackage) Error() string {
	return fmt.Sprintf(`%s: "%s" is not an Unreal package`, r.Caller, r.FileName)
}
