// Package level decodes the object reference list serialised in the body of a
// map's myLevel[Engine.Level] export.
//
// Layout, little endian:
//
//	compact   tag (ignored)
//	int32     count A
//	int32     reserved
//	compact   reference × count A   (0 means "no object")
//	int32     count B
//	int32     reserved
//	compact   reference × count B
package level

import (
	"fmt"

	"l2lo/unr"
)

type (
	// Resolver maps a non-zero object reference to a table entry.
	// *unr.Package implements it.
	Resolver interface {
		ObjectReference(ref int32) (unr.Entry, error)
	}
	ErrMalformedPayload struct {
		Caller   string
		Field    string
		Position int
		Cause    error
	}
)

const (
	StaticMeshClassName = "Engine.StaticMesh"
)

func (r ErrMalformedPayload) Error() string {
	msg := fmt.Sprintf("%s: malformed payload at byte %d reading %s", r.Caller, r.Position, r.Field)
	if r.Cause != nil {
		msg += ": " + r.Cause.Error()
	}
	return msg
}

func (r ErrMalformedPayload) Unwrap() error {
	return r.Cause
}
