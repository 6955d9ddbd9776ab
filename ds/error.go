package ds

import (
	"fmt"
)

type (
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code for %v (%T)", r.Caller, r.Value, r.Value)
}
